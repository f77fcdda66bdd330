package db

import (
	"database/sql"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/internal/infra/supabase"
	pkghttp "todo-api/pkg/http"
)

type GormHealthDBGateway struct {
	DB *gorm.DB
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db}
}

func (gateway *GormHealthDBGateway) Health() model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return downStatus(err.Error())
	}
	if err = sqlDB.Ping(); err != nil {
		return downStatus(err.Error())
	}
	return upStatus()
}

type SQLHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLHealthDBGateway)(nil)

func NewSQLHealthDBGateway(db *sql.DB) *SQLHealthDBGateway {
	return &SQLHealthDBGateway{DB: db}
}

func (gateway *SQLHealthDBGateway) Health() model.ComponentHealthStatus {
	if err := gateway.DB.Ping(); err != nil {
		return downStatus(err.Error())
	}
	return upStatus()
}

// SupabaseHealthGateway probes the hosted datastore with a minimal read,
// constructing the client per check like the request path does.
type SupabaseHealthGateway struct {
	creds supabase.CredentialsProvider
}

var _ HealthDBGateway = (*SupabaseHealthGateway)(nil)

func NewSupabaseHealthGateway(creds supabase.CredentialsProvider) *SupabaseHealthGateway {
	return &SupabaseHealthGateway{creds: creds}
}

func (gateway *SupabaseHealthGateway) Health() model.ComponentHealthStatus {
	client, err := supabase.NewClient(gateway.creds)
	if err != nil {
		return downStatus(err.Error())
	}

	_, _, _, err = client.Request().
		WithMethod(pkghttp.GET).
		WithPath(todosPath).
		WithQueryParams(map[string]string{"select": "id", "limit": "1"}).
		WithSuccessResp(&[]entity.Todo{}).
		WithErrorResp(&pgrstError{}).
		Execute()
	if err != nil {
		return downStatus(err.Error())
	}
	return upStatus()
}

func upStatus() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": string(model.StatusUp),
		},
	}
}

func downStatus(message string) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusDown,
		Details: map[string]string{
			"message": message,
		},
	}
}
