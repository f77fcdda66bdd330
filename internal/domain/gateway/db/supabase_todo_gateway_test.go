package db

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/model"
	pkghttp "todo-api/pkg/http"
)

func supabaseClient(serverURL string) *pkghttp.Client {
	return pkghttp.NewHttpClient(serverURL, pkghttp.ClientOptions{
		DefaultHeaders: map[string]string{
			"apikey":        "test-key",
			"Authorization": "Bearer test-key",
		},
	})
}

func TestSupabaseFindAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/todos", r.URL.Path)
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"b","title":"newer","is_done":false,"created_at":"2026-01-02T00:00:00Z","updated_at":"2026-01-02T00:00:00Z"},
			{"id":"a","title":"older","is_done":true,"created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-01T00:00:00Z"}
		]`))
	}))
	defer server.Close()

	gateway := NewSupabaseTodoGateway(supabaseClient(server.URL))

	todos, err := gateway.FindAll()

	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "b", todos[0].ID)
	assert.True(t, todos[1].IsDone)
}

func TestSupabaseCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/todos", r.URL.Path)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		assert.Equal(t, "application/vnd.pgrst.object+json", r.Header.Get("Accept"))

		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "buy milk", payload["title"])
		assert.Equal(t, false, payload["is_done"])

		w.Header().Set("Content-Type", "application/vnd.pgrst.object+json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"x","title":"buy milk","is_done":false,"created_at":"2026-01-02T00:00:00Z","updated_at":"2026-01-02T00:00:00Z"}`))
	}))
	defer server.Close()

	gateway := NewSupabaseTodoGateway(supabaseClient(server.URL))

	created, err := gateway.Create("buy milk")

	require.NoError(t, err)
	assert.Equal(t, "x", created.ID)
	assert.Equal(t, "buy milk", created.Title)
	assert.False(t, created.IsDone)
}

func TestSupabaseUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.x", r.URL.Query().Get("id"))

		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, true, payload["is_done"])
		assert.NotContains(t, payload, "title")
		assert.NotEmpty(t, payload["updated_at"])

		w.Header().Set("Content-Type", "application/vnd.pgrst.object+json")
		_, _ = w.Write([]byte(`{"id":"x","title":"buy milk","is_done":true,"created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-02T00:00:00Z"}`))
	}))
	defer server.Close()

	gateway := NewSupabaseTodoGateway(supabaseClient(server.URL))

	done := true
	updated, err := gateway.Update("x", model.UpdateTodoDTO{IsDone: &done})

	require.NoError(t, err)
	assert.True(t, updated.IsDone)
	assert.Equal(t, "2026-01-02T00:00:00Z", updated.UpdatedAt)
}

func TestSupabaseUpdateNoMatchingRow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotAcceptable)
		_, _ = w.Write([]byte(`{"message":"JSON object requested, multiple (or no) rows returned","code":"PGRST116","details":"The result contains 0 rows","hint":null}`))
	}))
	defer server.Close()

	gateway := NewSupabaseTodoGateway(supabaseClient(server.URL))

	done := true
	_, err := gateway.Update("missing", model.UpdateTodoDTO{IsDone: &done})

	var datastoreErr *model.DatastoreError
	require.ErrorAs(t, err, &datastoreErr)
	assert.Equal(t, "JSON object requested, multiple (or no) rows returned", datastoreErr.Message)
}

func TestSupabaseDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "eq.x", r.URL.Query().Get("id"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	gateway := NewSupabaseTodoGateway(supabaseClient(server.URL))

	assert.NoError(t, gateway.Delete("x"))
}

func TestSupabaseErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gateway := NewSupabaseTodoGateway(supabaseClient(server.URL))

	_, err := gateway.FindAll()

	var datastoreErr *model.DatastoreError
	require.ErrorAs(t, err, &datastoreErr)
	assert.Contains(t, datastoreErr.Message, "datastore request failed")
}
