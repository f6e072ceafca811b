// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the entities persisted by the store layer and
// serialized by the HTTP handlers.
package models

// Post is a content record with a title, body, optional image, and exactly
// one category assignment. The slug is derived from the name and unique
// across all posts; it is the post's stable external identifier.
type Post struct {
	ID         int64   `db:"id" json:"id"`
	Name       string  `db:"name" json:"name"`
	Slug       string  `db:"slug" json:"slug"`
	Content    string  `db:"content" json:"content"`
	ImageURL   *string `db:"image_url" json:"image_url"`
	CategoryID int64   `db:"category_id" json:"category_id"`
}
