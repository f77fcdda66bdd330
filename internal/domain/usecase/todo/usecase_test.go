package todo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
)

type stubGateway struct {
	todos   []entity.Todo
	created *entity.Todo
	updated *entity.Todo
	err     error

	createTitle string
	updateID    string
	updateDTO   model.UpdateTodoDTO
	deletedID   string
	calls       int
}

func (g *stubGateway) FindAll() ([]entity.Todo, error) {
	g.calls++
	return g.todos, g.err
}

func (g *stubGateway) Create(title string) (*entity.Todo, error) {
	g.calls++
	g.createTitle = title
	return g.created, g.err
}

func (g *stubGateway) Update(id string, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	g.calls++
	g.updateID = id
	g.updateDTO = dto
	return g.updated, g.err
}

func (g *stubGateway) Delete(id string) error {
	g.calls++
	g.deletedID = id
	return g.err
}

func factoryFor(gateway *stubGateway) db.Factory {
	return func() (db.TodoGateway, error) { return gateway, nil }
}

func TestFindAllReturnsEmptySliceForNil(t *testing.T) {
	gateway := &stubGateway{todos: nil}
	useCase := NewTodoUseCase(factoryFor(gateway))

	todos, err := useCase.FindAll()

	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestFindAllPassesThroughGatewayError(t *testing.T) {
	gateway := &stubGateway{err: &model.DatastoreError{Message: "connection refused"}}
	useCase := NewTodoUseCase(factoryFor(gateway))

	_, err := useCase.FindAll()

	var datastoreErr *model.DatastoreError
	require.ErrorAs(t, err, &datastoreErr)
	assert.Equal(t, "connection refused", datastoreErr.Message)
}

func TestCreatePassesTitle(t *testing.T) {
	gateway := &stubGateway{created: &entity.Todo{ID: "x", Title: "buy milk"}}
	useCase := NewTodoUseCase(factoryFor(gateway))

	created, err := useCase.Create(model.CreateTodoDTO{Title: "buy milk"})

	require.NoError(t, err)
	assert.Equal(t, "buy milk", gateway.createTitle)
	assert.False(t, created.IsDone)
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	gateway := &stubGateway{}
	useCase := NewTodoUseCase(factoryFor(gateway))

	_, err := useCase.Create(model.CreateTodoDTO{})

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title is required (string)", validationErr.Message)
	assert.Zero(t, gateway.calls)
}

func TestUpdateRejectsEmptyID(t *testing.T) {
	gateway := &stubGateway{}
	useCase := NewTodoUseCase(factoryFor(gateway))

	done := true
	_, err := useCase.Update("", model.UpdateTodoDTO{IsDone: &done})

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "id is required", validationErr.Message)
	assert.Zero(t, gateway.calls)
}

func TestUpdateRejectsEmptyPatch(t *testing.T) {
	gateway := &stubGateway{}
	useCase := NewTodoUseCase(factoryFor(gateway))

	_, err := useCase.Update("x", model.UpdateTodoDTO{})

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "no fields to update", validationErr.Message)
	assert.Zero(t, gateway.calls)
}

func TestUpdateForwardsPatch(t *testing.T) {
	gateway := &stubGateway{updated: &entity.Todo{ID: "x", Title: "renamed"}}
	useCase := NewTodoUseCase(factoryFor(gateway))

	title := "renamed"
	updated, err := useCase.Update("x", model.UpdateTodoDTO{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "x", gateway.updateID)
	require.NotNil(t, gateway.updateDTO.Title)
	assert.Equal(t, "renamed", *gateway.updateDTO.Title)
	assert.Nil(t, gateway.updateDTO.IsDone)
	assert.Equal(t, "renamed", updated.Title)
}

func TestDeleteRejectsEmptyID(t *testing.T) {
	gateway := &stubGateway{}
	useCase := NewTodoUseCase(factoryFor(gateway))

	err := useCase.Delete("")

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "id is required", validationErr.Message)
	assert.Zero(t, gateway.calls)
}

func TestDeleteForwardsID(t *testing.T) {
	gateway := &stubGateway{}
	useCase := NewTodoUseCase(factoryFor(gateway))

	require.NoError(t, useCase.Delete("x"))
	assert.Equal(t, "x", gateway.deletedID)
}

func TestFactoryErrorPropagates(t *testing.T) {
	factory := func() (db.TodoGateway, error) {
		return nil, &model.ConfigurationError{Message: "missing env: SUPABASE_URL or SUPABASE_ANON_KEY"}
	}
	useCase := NewTodoUseCase(factory)

	_, findErr := useCase.FindAll()
	_, createErr := useCase.Create(model.CreateTodoDTO{Title: "buy milk"})
	done := true
	_, updateErr := useCase.Update("x", model.UpdateTodoDTO{IsDone: &done})
	deleteErr := useCase.Delete("x")

	for _, err := range []error{findErr, createErr, updateErr, deleteErr} {
		var configErr *model.ConfigurationError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, "missing env: SUPABASE_URL or SUPABASE_ANON_KEY", configErr.Message)
	}
}
