package db

import (
	"fmt"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	pkghttp "todo-api/pkg/http"
)

const (
	todosPath       = "/todos"
	timeLayout      = time.RFC3339
	pgrstSingleJSON = "application/vnd.pgrst.object+json"
)

// pgrstError is the PostgREST error body. Only the message crosses the
// gateway boundary; it is passed through verbatim.
type pgrstError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// SupabaseTodoGateway speaks PostgREST against the hosted todos table.
// Instances are built per request from a fresh client.
type SupabaseTodoGateway struct {
	client *pkghttp.Client
}

var _ TodoGateway = (*SupabaseTodoGateway)(nil)

func NewSupabaseTodoGateway(client *pkghttp.Client) *SupabaseTodoGateway {
	return &SupabaseTodoGateway{client: client}
}

func (gateway *SupabaseTodoGateway) FindAll() ([]entity.Todo, error) {
	successResp, errResp, _, err := gateway.client.Request().
		WithMethod(pkghttp.GET).
		WithPath(todosPath).
		WithQueryParams(map[string]string{
			"select": "*",
			"order":  "created_at.desc",
		}).
		WithSuccessResp(&[]entity.Todo{}).
		WithErrorResp(&pgrstError{}).
		Execute()

	if err != nil {
		return nil, datastoreError(errResp, err)
	}

	todos := *successResp.(*[]entity.Todo)
	if todos == nil {
		todos = []entity.Todo{}
	}
	return todos, nil
}

func (gateway *SupabaseTodoGateway) Create(title string) (*entity.Todo, error) {
	successResp, errResp, _, err := gateway.client.Request().
		WithMethod(pkghttp.POST).
		WithPath(todosPath).
		WithQueryParams(map[string]string{"select": "*"}).
		WithHeaders(map[string]string{
			"Prefer": "return=representation",
			"Accept": pgrstSingleJSON,
		}).
		WithBody(map[string]any{"title": title, "is_done": false}).
		WithSuccessResp(&entity.Todo{}).
		WithErrorResp(&pgrstError{}).
		Execute()

	if err != nil {
		return nil, datastoreError(errResp, err)
	}
	return successResp.(*entity.Todo), nil
}

func (gateway *SupabaseTodoGateway) Update(id string, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	payload := map[string]any{
		"updated_at": time.Now().UTC().Format(timeLayout),
	}
	if dto.Title != nil {
		payload["title"] = *dto.Title
	}
	if dto.IsDone != nil {
		payload["is_done"] = *dto.IsDone
	}

	// The single-object Accept header makes PostgREST fail on zero matches
	successResp, errResp, _, err := gateway.client.Request().
		WithMethod(pkghttp.PATCH).
		WithPath(todosPath).
		WithQueryParams(map[string]string{
			"id":     "eq." + id,
			"select": "*",
		}).
		WithHeaders(map[string]string{
			"Prefer": "return=representation",
			"Accept": pgrstSingleJSON,
		}).
		WithBody(payload).
		WithSuccessResp(&entity.Todo{}).
		WithErrorResp(&pgrstError{}).
		Execute()

	if err != nil {
		return nil, datastoreError(errResp, err)
	}
	return successResp.(*entity.Todo), nil
}

func (gateway *SupabaseTodoGateway) Delete(id string) error {
	_, errResp, _, err := gateway.client.Request().
		WithMethod(pkghttp.DELETE).
		WithPath(todosPath).
		WithQueryParams(map[string]string{"id": "eq." + id}).
		WithErrorResp(&pgrstError{}).
		Execute()

	if err != nil {
		return datastoreError(errResp, err)
	}
	return nil
}

// datastoreError prefers the PostgREST message over the transport error
func datastoreError(errResp any, err error) error {
	if pgrst, ok := errResp.(*pgrstError); ok && pgrst.Message != "" {
		return &model.DatastoreError{Message: pgrst.Message}
	}
	return &model.DatastoreError{Message: fmt.Sprintf("datastore request failed: %v", err)}
}
