package service

import (
	"context"
	"strings"

	"focustrack/internal/model"
	"focustrack/internal/repository"
)

// ReminderService stores reminders. Nothing dispatches them.
type ReminderService struct {
	repo *repository.ReminderRepository
}

func NewReminderService(repo *repository.ReminderRepository) *ReminderService {
	return &ReminderService{repo: repo}
}

// CreateReminder attaches a reminder to taskID. Callers are expected to have
// checked that the task exists and belongs to them.
func (s *ReminderService) CreateReminder(ctx context.Context, taskID uint, remindAt string) (*model.Reminder, error) {
	remindAt = strings.TrimSpace(remindAt)
	if remindAt == "" {
		return nil, invalid("remind_at", "is required")
	}

	reminder := model.Reminder{TaskID: taskID, RemindAt: remindAt}
	if err := s.repo.Create(ctx, &reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (s *ReminderService) ListForTask(ctx context.Context, taskID uint) ([]model.Reminder, error) {
	return s.repo.ListByTask(ctx, taskID)
}
