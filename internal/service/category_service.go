package service

import (
	"context"
	"strings"

	"focustrack/internal/model"
	"focustrack/internal/repository"
)

// CategoryService provides helpers around categories.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// GetOrCreate trims name and returns the matching category, creating it if needed.
// A blank name means no category and yields nil.
func (s *CategoryService) GetOrCreate(ctx context.Context, name string) (*model.Category, error) {
	return s.repo.GetOrCreate(ctx, strings.TrimSpace(name))
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}
