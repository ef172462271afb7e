// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a blog post written by a user.
// Content is nullable; AuthorID references users.id (ON DELETE RESTRICT).
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   *string   `gorm:"type:text" json:"content"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostAuthor is the author projection embedded in joined post reads.
type PostAuthor struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PostWithAuthor is the read projection of a post left-joined with its author.
// Author is nil when the referenced user cannot be resolved; the post row is
// kept either way.
type PostWithAuthor struct {
	ID        uint        `json:"id"`
	Title     string      `json:"title"`
	Content   *string     `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Author    *PostAuthor `json:"author"`
}

// WithAuthor maps a post (with its eager-loaded Author, possibly nil) into
// the joined read projection.
func (p *Post) WithAuthor() PostWithAuthor {
	out := PostWithAuthor{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Author != nil && p.Author.ID != 0 {
		out.Author = &PostAuthor{
			ID:    p.Author.ID,
			Name:  p.Author.Name,
			Email: p.Author.Email,
		}
	}
	return out
}
