// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"fmt"
	"strings"

	"microcms/internal/models"
	slugify "microcms/internal/slug"
	"microcms/internal/store"
)

// PostService enforces the business rules for posts: slug derivation,
// slug uniqueness, and the category reference check.
type PostService struct {
	posts      *store.PostStore
	categories *store.CategoryStore
}

// NewPostService returns a new PostService.
func NewPostService(posts *store.PostStore, categories *store.CategoryStore) *PostService {
	return &PostService{posts: posts, categories: categories}
}

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	Name       string
	Content    string
	ImageURL   *string
	CategoryID int64
}

// Create validates the input, derives the slug from the name, verifies the
// category exists, and persists the post.
func (s *PostService) Create(in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	postSlug := slugify.Generate(in.Name)
	if postSlug == "" {
		return nil, fmt.Errorf("%w: name must contain at least one letter or digit", ErrValidation)
	}

	if err := s.checkCategory(in.CategoryID); err != nil {
		return nil, err
	}

	existing, err := s.posts.FindBySlug(postSlug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: slug %q already exists", ErrConflict, postSlug)
	}

	created, err := s.posts.Create(&models.Post{
		Name:       in.Name,
		Slug:       postSlug,
		Content:    in.Content,
		ImageURL:   in.ImageURL,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		return nil, s.mapWriteError(err, postSlug)
	}
	return created, nil
}

// Get returns the post with the given slug. Exact match only.
func (s *PostService) Get(slug string) (*models.Post, error) {
	p, err := s.posts.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: post %q", ErrNotFound, slug)
	}
	return p, nil
}

// List returns all posts, filtered to names containing the search substring
// (case-insensitive) when search is non-empty.
func (s *PostService) List(search string) ([]models.Post, error) {
	return s.posts.List(search)
}

// UpdatePostInput carries the optional fields of a post update. A nil field
// means "leave unchanged"; a present-but-empty ImageURL clears the image.
type UpdatePostInput struct {
	Name       *string
	Content    *string
	ImageURL   *string
	CategoryID *int64
}

// Update applies a partial update to the post with the given slug. Renaming
// recomputes the slug; the post keeps its identity (ID) but moves to the new
// slug, and the old one stops resolving.
func (s *PostService) Update(slug string, in UpdatePostInput) (*models.Post, error) {
	p, err := s.Get(slug)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		newSlug := slugify.Generate(*in.Name)
		if newSlug == "" {
			return nil, fmt.Errorf("%w: name must contain at least one letter or digit", ErrValidation)
		}
		if newSlug != p.Slug {
			other, err := s.posts.FindBySlug(newSlug)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, fmt.Errorf("%w: slug %q already exists", ErrConflict, newSlug)
			}
		}
		p.Name = *in.Name
		p.Slug = newSlug
	}

	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, fmt.Errorf("%w: content must not be empty", ErrValidation)
		}
		p.Content = *in.Content
	}

	if in.ImageURL != nil {
		if *in.ImageURL == "" {
			p.ImageURL = nil
		} else {
			p.ImageURL = in.ImageURL
		}
	}

	if in.CategoryID != nil {
		if err := s.checkCategory(*in.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = *in.CategoryID
	}

	if err := s.posts.Update(p); err != nil {
		return nil, s.mapWriteError(err, p.Slug)
	}
	return p, nil
}

// Delete removes the post with the given slug permanently.
func (s *PostService) Delete(slug string) error {
	if _, err := s.Get(slug); err != nil {
		return err
	}
	return s.posts.Delete(slug)
}

// checkCategory verifies that a client-supplied category reference resolves.
func (s *PostService) checkCategory(id int64) error {
	c, err := s.categories.FindByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: category %d", ErrCategoryNotFound, id)
	}
	return nil
}

// mapWriteError translates constraint violations that slip past the
// pre-checks under concurrency into the service taxonomy.
func (s *PostService) mapWriteError(err error, slug string) error {
	if store.IsUniqueViolation(err) {
		return fmt.Errorf("%w: slug %q already exists", ErrConflict, slug)
	}
	if store.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w", ErrCategoryNotFound)
	}
	return err
}
