package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"focustrack/internal/model"
)

// TaskFilter narrows ListTasks. Zero values mean no restriction.
type TaskFilter struct {
	UserID uint
	Status string
}

// TaskRepository handles CRUD for tasks. Every owner-aware query goes through ownedBy.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// List returns tasks ordered by due date; empty due dates sort first.
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Scopes(ownedBy(filter.UserID)).Preload("Category")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var tasks []model.Task
	if err := q.Order("due_date ASC").Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// FindByID returns the task only when userID owns it (or userID is 0).
func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Scopes(ownedBy(userID)).Preload("Category").
		Where("id = ?", taskID).First(&task).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &task, nil
}

// UpdateStatus sets the status of an owned task.
func (r *TaskRepository) UpdateStatus(ctx context.Context, userID, taskID uint, status string) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).Scopes(ownedBy(userID)).
		Where("id = ?", taskID).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update task status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Update overwrites the mutable fields of an owned task inside a transaction.
func (r *TaskRepository) Update(ctx context.Context, userID uint, task *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Task
		if err := tx.Scopes(ownedBy(userID)).Where("id = ?", task.ID).First(&existing).Error; err != nil {
			return notFound(err)
		}

		updates := map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"due_date":    task.DueDate,
			"priority":    task.Priority,
			"status":      task.Status,
			"category_id": task.CategoryID,
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return fmt.Errorf("update task: %w", err)
		}

		task.CreatedAt = existing.CreatedAt
		task.UserID = existing.UserID
		return nil
	})
}

// Delete removes an owned task together with its reminders.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task model.Task
		if err := tx.Scopes(ownedBy(userID)).Where("id = ?", taskID).First(&task).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Where("task_id = ?", task.ID).Delete(&model.Reminder{}).Error; err != nil {
			return fmt.Errorf("delete reminders: %w", err)
		}
		if err := tx.Delete(&task).Error; err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	})
}
