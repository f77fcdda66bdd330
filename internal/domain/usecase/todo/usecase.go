package todo

import (
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	FindAll() ([]entity.Todo, error)
	Create(dto model.CreateTodoDTO) (*entity.Todo, error)
	Update(id string, dto model.UpdateTodoDTO) (*entity.Todo, error)
	Delete(id string) error
}
