package todo

import (
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
)

type todoUseCase struct {
	gateway db.Factory
}

// NewTodoUseCase builds the todo use case on a gateway factory. The factory
// runs once per operation so backends that construct per-request clients
// always see freshly read configuration.
func NewTodoUseCase(gateway db.Factory) UseCase {
	return &todoUseCase{
		gateway: gateway,
	}
}

func (uc *todoUseCase) FindAll() ([]entity.Todo, error) {
	gateway, err := uc.gateway()
	if err != nil {
		return nil, err
	}

	todos, err := gateway.FindAll()
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []entity.Todo{}
	}
	return todos, nil
}

func (uc *todoUseCase) Create(dto model.CreateTodoDTO) (*entity.Todo, error) {
	if dto.Title == "" {
		return nil, &model.ValidationError{Message: "title is required (string)"}
	}

	gateway, err := uc.gateway()
	if err != nil {
		return nil, err
	}

	// is_done is forced to false at the gateway regardless of client input
	return gateway.Create(dto.Title)
}

func (uc *todoUseCase) Update(id string, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	if id == "" {
		return nil, &model.ValidationError{Message: "id is required"}
	}
	if dto.Empty() {
		return nil, &model.ValidationError{Message: "no fields to update"}
	}

	gateway, err := uc.gateway()
	if err != nil {
		return nil, err
	}

	return gateway.Update(id, dto)
}

func (uc *todoUseCase) Delete(id string) error {
	if id == "" {
		return &model.ValidationError{Message: "id is required"}
	}

	gateway, err := uc.gateway()
	if err != nil {
		return err
	}

	return gateway.Delete(id)
}
