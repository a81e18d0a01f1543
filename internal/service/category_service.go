package service

import (
	"context"
	"sort"

	"github.com/flowfox-labs/finance-server/internal/storage"
	"github.com/flowfox-labs/finance-server/internal/storage/category"
)

// CategoryService handles category read paths.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// ListCategories returns categories sorted by name, optionally filtered to
// one kind.
func (s *CategoryService) ListCategories(ctx context.Context, kind string) ([]category.Category, error) {
	categories, err := s.storage.Categories.Load(ctx)
	if err != nil {
		return nil, err
	}

	if kind != "" {
		filtered := categories[:0]
		for _, c := range categories {
			if c.Kind == kind {
				filtered = append(filtered, c)
			}
		}
		categories = filtered
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}
