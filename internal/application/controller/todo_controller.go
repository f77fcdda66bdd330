package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
}

func NewTodoController(api *echo.Group, useCase todo.UseCase) *TodoController {
	return &TodoController{api: api, useCase: useCase}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos", controller.FindAll)
	controller.api.POST("/todos", controller.Create)
	controller.api.PATCH("/todos/:id", controller.Update)
	controller.api.DELETE("/todos/:id", controller.Delete)
}

// FindAll godoc
// @Summary List todos
// @Description Retrieve all todos ordered by creation time, newest first
// @Tags todos
// @Produce json
// @Success 200 {array} entity.Todo "Todos, newest first"
// @Failure 500 {object} map[string]string "Datastore error"
// @Failure 503 {object} map[string]string "Datastore configuration error"
// @Router /todos [get]
func (controller *TodoController) FindAll(c echo.Context) error {
	todos, err := controller.useCase.FindAll()
	if err != nil {
		return c.JSON(errorStatus(err), errorBody(err))
	}
	return c.JSON(http.StatusOK, todos)
}

// Create godoc
// @Summary Create a todo
// @Description Create a todo from the given title; is_done always starts false
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 201 {object} entity.Todo "Created todo"
// @Failure 400 {object} map[string]string "Invalid body or missing title"
// @Failure 500 {object} map[string]string "Datastore error"
// @Failure 503 {object} map[string]string "Datastore configuration error"
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	var raw map[string]any
	if err := c.Bind(&raw); err != nil || raw == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON or empty body"})
	}

	// A non-string title is dropped here and rejected as missing below
	title, _ := raw["title"].(string)

	created, err := controller.useCase.Create(model.CreateTodoDTO{Title: title})
	if err != nil {
		return c.JSON(errorStatus(err), errorBody(err))
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a todo
// @Description Patch title and/or is_done of the todo matching id. Unknown or
// @Description mistyped fields are ignored; a patch with no recognized field is rejected.
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo id"
// @Param todo body model.UpdateTodoDTO true "Fields to update"
// @Success 200 {object} entity.Todo "Updated todo"
// @Failure 400 {object} map[string]string "Missing id or no fields to update"
// @Failure 500 {object} map[string]string "Datastore error, including no matching row"
// @Failure 503 {object} map[string]string "Datastore configuration error"
// @Router /todos/{id} [patch]
func (controller *TodoController) Update(c echo.Context) error {
	id := c.Param("id")

	// A malformed body is treated as an empty patch, not an error
	var raw map[string]any
	if err := c.Bind(&raw); err != nil {
		raw = map[string]any{}
	}

	var dto model.UpdateTodoDTO
	if title, ok := raw["title"].(string); ok {
		dto.Title = &title
	}
	if isDone, ok := raw["is_done"].(bool); ok {
		dto.IsDone = &isDone
	}

	updated, err := controller.useCase.Update(id, dto)
	if err != nil {
		return c.JSON(errorStatus(err), errorBody(err))
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a todo
// @Description Delete the todo matching id. Succeeds whether or not a row matched.
// @Tags todos
// @Produce json
// @Param id path string true "Todo id"
// @Success 200 {object} map[string]bool "Deletion confirmation"
// @Failure 400 {object} map[string]string "Missing id"
// @Failure 500 {object} map[string]string "Datastore error"
// @Failure 503 {object} map[string]string "Datastore configuration error"
// @Router /todos/{id} [delete]
func (controller *TodoController) Delete(c echo.Context) error {
	if err := controller.useCase.Delete(c.Param("id")); err != nil {
		return c.JSON(errorStatus(err), errorBody(err))
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// errorStatus maps the error taxonomy to HTTP status codes: client input
// violations to 400, absent configuration to 503, anything else to 500.
func errorStatus(err error) int {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var configErr *model.ConfigurationError
	if errors.As(err, &configErr) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func errorBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}
