// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides the persistence layer. Each operation is an
// explicit query function so the storage contract can be tested in
// isolation from the HTTP layer.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"microcms/internal/models"
)

// PostStore manages posts in the database.
type PostStore struct {
	db *sqlx.DB
}

// NewPostStore returns a new PostStore.
func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, name, slug, content, image_url, category_id`

// List returns all posts in insertion order. When search is non-empty,
// results are filtered to posts whose name contains the substring,
// case-insensitive. instr avoids LIKE wildcard interpretation of the
// user-supplied string.
func (s *PostStore) List(search string) ([]models.Post, error) {
	var items []models.Post
	var err error
	if search == "" {
		err = s.db.Select(&items, `SELECT `+postColumns+` FROM posts ORDER BY id`)
	} else {
		err = s.db.Select(&items,
			`SELECT `+postColumns+` FROM posts WHERE instr(lower(name), lower(?)) > 0 ORDER BY id`,
			search)
	}
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return items, nil
}

// FindBySlug retrieves a post by its unique slug. Exact match only.
// Returns nil if not found.
func (s *PostStore) FindBySlug(slug string) (*models.Post, error) {
	var p models.Post
	err := s.db.Get(&p, `SELECT `+postColumns+` FROM posts WHERE slug = ?`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	return &p, nil
}

// Create inserts a new post and returns it with the generated ID.
// A duplicate slug surfaces as a unique violation, an unknown category
// as a foreign key violation.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	res, err := s.db.Exec(`
		INSERT INTO posts (name, slug, content, image_url, category_id)
		VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.Slug, p.Content, p.ImageURL, p.CategoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create post id: %w", err)
	}

	created := *p
	created.ID = id
	return &created, nil
}

// Update rewrites all mutable fields of an existing post.
func (s *PostStore) Update(p *models.Post) error {
	_, err := s.db.Exec(`
		UPDATE posts SET
			name = ?, slug = ?, content = ?, image_url = ?, category_id = ?
		WHERE id = ?`,
		p.Name, p.Slug, p.Content, p.ImageURL, p.CategoryID, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

// Delete removes a post by slug.
func (s *PostStore) Delete(slug string) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE slug = ?`, slug)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// CountByCategory returns the number of posts assigned to the category.
// Used to block category deletion while dependents exist.
func (s *PostStore) CountByCategory(categoryID int64) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM posts WHERE category_id = ?`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count posts by category: %w", err)
	}
	return count, nil
}
