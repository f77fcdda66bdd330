// Package client is the HTTP API client used by the terminal frontend. It
// mirrors the fetch calls of the web page: only Create surfaces the server's
// error body, the other operations report bare failure and leave the
// user-facing message to the caller.
package client

import (
	"fmt"

	pkghttp "todo-api/pkg/http"
)

// Todo is the wire representation served by the API.
type Todo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	IsDone    bool   `json:"is_done"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// UpdatePatch carries the optional fields of a PATCH request.
type UpdatePatch struct {
	Title  *string `json:"title,omitempty"`
	IsDone *bool   `json:"is_done,omitempty"`
}

// ServerError is an error message read from a response body's error field.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

type errorResponse struct {
	Error string `json:"error"`
}

// API talks to the todo HTTP API rooted at baseURL (including the context
// path, e.g. http://localhost:8080/api).
type API struct {
	http *pkghttp.Client
}

func New(baseURL string) *API {
	return &API{
		http: pkghttp.NewHttpClient(baseURL, pkghttp.ClientOptions{}),
	}
}

// List fetches every todo, newest first.
func (a *API) List() ([]Todo, error) {
	successResp, _, _, err := a.http.Request().
		WithMethod(pkghttp.GET).
		WithPath("/todos").
		WithSuccessResp(&[]Todo{}).
		Execute()
	if err != nil {
		return nil, err
	}
	return *successResp.(*[]Todo), nil
}

// Create posts a new todo. A decodable error body is surfaced as a
// ServerError so the caller can show the server's own message.
func (a *API) Create(title string) (*Todo, error) {
	successResp, errResp, _, err := a.http.Request().
		WithMethod(pkghttp.POST).
		WithPath("/todos").
		WithBody(map[string]string{"title": title}).
		WithSuccessResp(&Todo{}).
		WithErrorResp(&errorResponse{}).
		Execute()
	if err != nil {
		if body, ok := errResp.(*errorResponse); ok && body.Error != "" {
			return nil, &ServerError{Message: body.Error}
		}
		return nil, err
	}
	return successResp.(*Todo), nil
}

// Update patches the todo matching id and returns the server representation.
func (a *API) Update(id string, patch UpdatePatch) (*Todo, error) {
	successResp, _, _, err := a.http.Request().
		WithMethod(pkghttp.PATCH).
		WithPath(fmt.Sprintf("/todos/%s", id)).
		WithBody(patch).
		WithSuccessResp(&Todo{}).
		Execute()
	if err != nil {
		return nil, err
	}
	return successResp.(*Todo), nil
}

// Delete removes the todo matching id.
func (a *API) Delete(id string) error {
	_, _, _, err := a.http.Request().
		WithMethod(pkghttp.DELETE).
		WithPath(fmt.Sprintf("/todos/%s", id)).
		Execute()
	return err
}
