// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"fmt"
	"strings"

	"microcms/internal/models"
	"microcms/internal/store"
)

// CategoryService enforces the business rules for categories. It needs the
// post store to check for dependents before a delete.
type CategoryService struct {
	categories *store.CategoryStore
	posts      *store.PostStore
}

// NewCategoryService returns a new CategoryService.
func NewCategoryService(categories *store.CategoryStore, posts *store.PostStore) *CategoryService {
	return &CategoryService{categories: categories, posts: posts}
}

// Create persists a new category. The name must be non-empty and unique.
func (s *CategoryService) Create(name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	existing, err := s.categories.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: category %q already exists", ErrConflict, name)
	}

	created, err := s.categories.Create(name)
	if err != nil {
		// Concurrent create with the same name loses the race at the
		// unique index rather than here.
		if store.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: category %q already exists", ErrConflict, name)
		}
		return nil, err
	}
	return created, nil
}

// Get returns the category with the given ID.
func (s *CategoryService) Get(id int64) (*models.Category, error) {
	c, err := s.categories.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
	}
	return c, nil
}

// List returns all categories.
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categories.List()
}

// UpdateCategoryInput carries the optional fields of a category update.
// A nil field means "leave unchanged".
type UpdateCategoryInput struct {
	Name *string
}

// Update applies a partial update to a category.
func (s *CategoryService) Update(id int64, in UpdateCategoryInput) (*models.Category, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Name == nil {
		return c, nil
	}
	name := *in.Name
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}

	other, err := s.categories.FindByName(name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, fmt.Errorf("%w: category %q already exists", ErrConflict, name)
	}

	if err := s.categories.UpdateName(id, name); err != nil {
		if store.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: category %q already exists", ErrConflict, name)
		}
		return nil, err
	}

	c.Name = name
	return c, nil
}

// Delete removes a category. Deletion is rejected while posts still
// reference the category; reassign or delete the posts first.
func (s *CategoryService) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	count, err := s.posts.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: category %d has %d dependent posts", ErrConflict, id, count)
	}

	if err := s.categories.Delete(id); err != nil {
		// A post created between the count and the delete trips the
		// foreign key instead.
		if store.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: category %d has dependent posts", ErrConflict, id)
		}
		return err
	}
	return nil
}
