package model

type CreateTodoDTO struct {
	Title string `json:"title"`
}

// UpdateTodoDTO is a typed patch: nil means the field was not supplied (or
// was supplied with the wrong type and silently dropped at the boundary).
type UpdateTodoDTO struct {
	Title  *string `json:"title,omitempty"`
	IsDone *bool   `json:"is_done,omitempty"`
}

// Empty reports whether the patch carries no recognized field.
func (dto UpdateTodoDTO) Empty() bool {
	return dto.Title == nil && dto.IsDone == nil
}
