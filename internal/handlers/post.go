// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"microcms/internal/models"
	"microcms/internal/service"
)

// Posts handles the /posts endpoints.
type Posts struct {
	svc *service.PostService
}

// NewPosts returns the post handler group.
func NewPosts(svc *service.PostService) *Posts {
	return &Posts{svc: svc}
}

// CreatePostRequest is the body of POST /posts. CategoryID is a pointer so
// an absent field is a validation error rather than a lookup of category 0.
type CreatePostRequest struct {
	Name       string  `json:"name"`
	Content    string  `json:"content"`
	ImageURL   *string `json:"image_url"`
	CategoryID *int64  `json:"category_id"`
}

// UpdatePostRequest is the body of PUT /posts/{slug}. A missing field
// leaves the value unchanged; an explicit empty image_url clears the image.
type UpdatePostRequest struct {
	Name       *string `json:"name"`
	Content    *string `json:"content"`
	ImageURL   *string `json:"image_url"`
	CategoryID *int64  `json:"category_id"`
}

// Create handles POST /posts.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid JSON body", "validation_error")
		return
	}
	if req.CategoryID == nil {
		writeError(w, http.StatusUnprocessableEntity, "category_id is required", "validation_error")
		return
	}

	p, err := h.svc.Create(service.CreatePostInput{
		Name:       req.Name,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		CategoryID: *req.CategoryID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// List handles GET /posts?search=. The search term filters post names by
// case-insensitive substring; without it, all posts are returned.
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.URL.Query().Get("search"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []models.Post{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /posts/{slug}.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(chi.URLParam(r, "slug"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Update handles PUT /posts/{slug}.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid JSON body", "validation_error")
		return
	}

	p, err := h.svc.Update(chi.URLParam(r, "slug"), service.UpdatePostInput{
		Name:       req.Name,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /posts/{slug}.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(chi.URLParam(r, "slug")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Post deleted"})
}
