// ABOUTME: Data models for content store entities
// ABOUTME: Defines Owner, User, Category, and Article structs
package models

import "time"

// Identity is an opaque principal supplied by the hosting environment.
type Identity string

// User roles.
const (
	RoleAuthor = "author"
	RoleEditor = "editor"
)

// ValidRole reports whether r is a known user role.
func ValidRole(r string) bool {
	return r == RoleAuthor || r == RoleEditor
}

// Owner marks the single administrative identity. Created once, never updated.
type Owner struct {
	ID        Identity  `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User is a registered account, keyed by identity. Accounts register as
// inactive authors; only the owner changes name, role, or active status.
type User struct {
	ID        Identity  `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category is an owner-created label. Immutable after creation.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content,omitempty"`
	CategoryID  string    `json:"category_id,omitempty"`
	AuthorID    Identity  `json:"author_id"`
	EditorID    Identity  `json:"editor_id"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UnderReview reports whether an editor other than the author has claimed the
// article. Once claimed, the author loses edit rights.
func (a *Article) UnderReview() bool {
	return a.EditorID != a.AuthorID
}

// ArticlePayload carries caller-supplied article fields for create and update.
// Published is honored only when the caller holds the editor role.
type ArticlePayload struct {
	ID          string
	Title       string
	Date        time.Time
	Description string
	Content     string
	CategoryID  string
	Published   bool
}

// UserPayload carries owner-supplied account fields for update.
type UserPayload struct {
	ID     Identity
	Name   string
	Role   string
	Active bool
}
