package entity

// Todo is the sole persisted entity. Timestamps are RFC 3339 strings as
// returned by the datastore; the id is assigned by the datastore on insert.
type Todo struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Title     string `json:"title"`
	IsDone    bool   `json:"is_done"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
