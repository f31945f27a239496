package service

import (
	"context"
	"strings"
	"time"

	"focustrack/internal/model"
	"focustrack/internal/repository"
)

// CreatedAtLayout is how Task.CreatedAt is stamped.
const CreatedAtLayout = "2006-01-02 15:04"

// TaskInput carries the user-editable fields of a task.
type TaskInput struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
	Status      string
	Category    string
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo   *repository.TaskRepository
	categories *CategoryService
	now        func() time.Time
}

func NewTaskService(taskRepo *repository.TaskRepository, categories *CategoryService) *TaskService {
	return &TaskService{taskRepo: taskRepo, categories: categories, now: time.Now}
}

// WithClock replaces the clock used to stamp CreatedAt.
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = now
	return s
}

func (s *TaskService) CreateTask(ctx context.Context, owner *model.User, input TaskInput) (*model.Task, error) {
	if owner == nil {
		return nil, invalid("owner", "is required")
	}
	input, err := normalizeInput(input)
	if err != nil {
		return nil, err
	}

	task := model.Task{
		UserID:      owner.ID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Status:      input.Status,
		CreatedAt:   s.now().Format(CreatedAtLayout),
	}
	if err := s.assignCategory(ctx, &task, input.Category); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks returns tasks ordered by due date. A nil owner lists everyone's tasks;
// an unknown status is ignored rather than rejected.
func (s *TaskService) ListTasks(ctx context.Context, owner *model.User, status string) ([]model.Task, error) {
	filter := repository.TaskFilter{UserID: ownerID(owner)}
	if model.IsValidStatus(status) {
		filter.Status = status
	}
	return s.taskRepo.List(ctx, filter)
}

func (s *TaskService) GetTask(ctx context.Context, owner *model.User, taskID uint) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, ownerID(owner), taskID)
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, owner *model.User, taskID uint, status string) error {
	if !model.IsValidStatus(status) {
		return invalid("status", "must be one of %s", strings.Join(model.Statuses, ", "))
	}
	return s.taskRepo.UpdateStatus(ctx, ownerID(owner), taskID, status)
}

// UpdateTask overwrites every mutable field of an owned task.
func (s *TaskService) UpdateTask(ctx context.Context, owner *model.User, taskID uint, input TaskInput) (*model.Task, error) {
	input, err := normalizeInput(input)
	if err != nil {
		return nil, err
	}
	// Check ownership before a new category row can be created.
	if _, err := s.taskRepo.FindByID(ctx, ownerID(owner), taskID); err != nil {
		return nil, err
	}

	task := model.Task{
		ID:          taskID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Status:      input.Status,
	}
	if err := s.assignCategory(ctx, &task, input.Category); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(ctx, ownerID(owner), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, owner *model.User, taskID uint) error {
	return s.taskRepo.Delete(ctx, ownerID(owner), taskID)
}

func (s *TaskService) assignCategory(ctx context.Context, task *model.Task, name string) error {
	category, err := s.categories.GetOrCreate(ctx, name)
	if err != nil {
		return err
	}
	if category != nil {
		task.CategoryID = &category.ID
		task.Category = category
	}
	return nil
}

func normalizeInput(input TaskInput) (TaskInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.DueDate = strings.TrimSpace(input.DueDate)
	input.Category = strings.TrimSpace(input.Category)

	if input.Title == "" {
		return input, invalid("title", "is required")
	}
	if !model.IsValidPriority(input.Priority) {
		return input, invalid("priority", "must be one of %s", strings.Join(model.Priorities, ", "))
	}
	if !model.IsValidStatus(input.Status) {
		return input, invalid("status", "must be one of %s", strings.Join(model.Statuses, ", "))
	}
	return input, nil
}

func ownerID(owner *model.User) uint {
	if owner == nil {
		return 0
	}
	return owner.ID
}
