package db

import (
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// TodoGateway is the datastore contract consumed by the todo use case:
// equality filter by id, order by created_at descending, insert and update
// returning the affected row, and idempotent delete.
type TodoGateway interface {
	// FindAll returns every todo ordered by created_at descending.
	FindAll() ([]entity.Todo, error)
	// Create inserts a row with the given title and is_done=false and
	// returns the inserted row with its server-assigned fields.
	Create(title string) (*entity.Todo, error)
	// Update applies the patch plus a fresh updated_at to the row matching
	// id and returns the updated row. Zero matched rows is an error.
	Update(id string, dto model.UpdateTodoDTO) (*entity.Todo, error)
	// Delete removes the row matching id. Zero matched rows is not an error.
	Delete(id string) error
}

// Factory yields a gateway per invocation. The Supabase factory constructs a
// fresh client from freshly read configuration on every call, so changed
// credentials are picked up without restarting; the direct-Postgres
// factories hand out a pool-backed singleton. A factory error is a
// configuration error.
type Factory func() (TodoGateway, error)
