package service

import (
	"context"
	"fmt"
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// CategoryInput represents data required to create a category.
type CategoryInput struct {
	Name string
	Icon string
}

// CategoryUpdate carries a partial update; nil fields are left unchanged.
type CategoryUpdate struct {
	Name *string
	Icon *string
}

// CategoryService provides helpers around categories.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, userID uint, input CategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	icon := strings.TrimSpace(input.Icon)
	if icon == "" {
		icon = model.DefaultCategoryIcon
	}

	category := model.Category{UserID: userID, Name: name, Icon: icon}
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, userID uint) ([]model.Category, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, userID, categoryID uint, update CategoryUpdate) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		category.Name = name
	}
	if update.Icon != nil {
		icon := strings.TrimSpace(*update.Icon)
		if icon == "" {
			icon = model.DefaultCategoryIcon
		}
		category.Icon = icon
	}

	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category without touching its tasks.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, categoryID uint) (bool, error) {
	return s.repo.Delete(ctx, userID, categoryID)
}
