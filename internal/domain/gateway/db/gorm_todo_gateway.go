package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// GormTodoGateway is the direct-Postgres alternative to the Supabase
// backend. Ids are generated here since no hosted service assigns them.
type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

func (gateway *GormTodoGateway) FindAll() ([]entity.Todo, error) {
	todos := make([]entity.Todo, 0)
	if err := gateway.DB.Order("created_at DESC").Find(&todos).Error; err != nil {
		return nil, &model.DatastoreError{Message: err.Error()}
	}
	return todos, nil
}

func (gateway *GormTodoGateway) Create(title string) (*entity.Todo, error) {
	now := time.Now().UTC().Format(timeLayout)
	todo := entity.Todo{
		ID:        uuid.New().String(),
		Title:     title,
		IsDone:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := gateway.DB.Create(&todo).Error; err != nil {
		return nil, &model.DatastoreError{Message: err.Error()}
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Update(id string, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	updates := map[string]any{
		"updated_at": time.Now().UTC().Format(timeLayout),
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.IsDone != nil {
		updates["is_done"] = *dto.IsDone
	}

	tx := gateway.DB.Model(&entity.Todo{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, &model.DatastoreError{Message: tx.Error.Error()}
	}
	if tx.RowsAffected == 0 {
		return nil, &model.DatastoreError{Message: "expected a single updated row, got none"}
	}

	var todo entity.Todo
	if err := gateway.DB.First(&todo, "id = ?", id).Error; err != nil {
		return nil, &model.DatastoreError{Message: err.Error()}
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Delete(id string) error {
	if err := gateway.DB.Delete(&entity.Todo{}, "id = ?", id).Error; err != nil {
		return &model.DatastoreError{Message: err.Error()}
	}
	return nil
}
