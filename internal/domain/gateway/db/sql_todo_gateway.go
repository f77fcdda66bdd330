package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// SQLTodoGateway runs plain SQL through database/sql against the same todos
// table as the GORM backend.
type SQLTodoGateway struct {
	DB *sql.DB
}

var _ TodoGateway = (*SQLTodoGateway)(nil)

func NewSQLTodoGateway(db *sql.DB) *SQLTodoGateway {
	return &SQLTodoGateway{DB: db}
}

func (gateway *SQLTodoGateway) FindAll() ([]entity.Todo, error) {
	rows, err := gateway.DB.Query(`
		SELECT id, title, is_done, created_at, updated_at
		FROM todos
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, &model.DatastoreError{Message: err.Error()}
	}
	defer func() { _ = rows.Close() }()

	results := make([]entity.Todo, 0)
	for rows.Next() {
		var t entity.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.IsDone, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, &model.DatastoreError{Message: err.Error()}
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.DatastoreError{Message: err.Error()}
	}
	return results, nil
}

func (gateway *SQLTodoGateway) Create(title string) (*entity.Todo, error) {
	now := time.Now().UTC().Format(timeLayout)
	todo := entity.Todo{
		ID:        uuid.New().String(),
		Title:     title,
		IsDone:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := gateway.DB.Exec(`
		INSERT INTO todos (id, title, is_done, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		todo.ID, todo.Title, todo.IsDone, todo.CreatedAt, todo.UpdatedAt)
	if err != nil {
		return nil, &model.DatastoreError{Message: err.Error()}
	}
	return &todo, nil
}

func (gateway *SQLTodoGateway) Update(id string, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	now := time.Now().UTC().Format(timeLayout)

	// nil patch fields become NULL and COALESCE keeps the stored value
	var t entity.Todo
	err := gateway.DB.QueryRow(`
		UPDATE todos
		SET updated_at = $1,
		    title = COALESCE($2, title),
		    is_done = COALESCE($3, is_done)
		WHERE id = $4
		RETURNING id, title, is_done, created_at, updated_at`,
		now, dto.Title, dto.IsDone, id).
		Scan(&t.ID, &t.Title, &t.IsDone, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &model.DatastoreError{Message: "expected a single updated row, got none"}
	}
	if err != nil {
		return nil, &model.DatastoreError{Message: err.Error()}
	}
	return &t, nil
}

func (gateway *SQLTodoGateway) Delete(id string) error {
	if _, err := gateway.DB.Exec(`DELETE FROM todos WHERE id = $1`, id); err != nil {
		return &model.DatastoreError{Message: err.Error()}
	}
	return nil
}
