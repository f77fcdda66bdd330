package health

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-api/internal/domain/model"
)

type stubHealthGateway struct {
	status model.ComponentHealthStatus
}

func (g stubHealthGateway) Health() model.ComponentHealthStatus {
	return g.status
}

func TestCheckHealthUp(t *testing.T) {
	useCase := NewHealthUseCase(stubHealthGateway{
		status: model.ComponentHealthStatus{Status: model.StatusUp},
	})

	response := useCase.CheckHealth()

	assert.Equal(t, model.StatusUp, response.Status)
	assert.Equal(t, model.StatusUp, response.Database.Status)
}

func TestCheckHealthDownWhenDatabaseDown(t *testing.T) {
	useCase := NewHealthUseCase(stubHealthGateway{
		status: model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"message": "connection refused"},
		},
	})

	response := useCase.CheckHealth()

	assert.Equal(t, model.StatusDown, response.Status)
	assert.Equal(t, "connection refused", response.Database.Details["message"])
}
