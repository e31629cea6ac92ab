package models

import "time"

// User represents a registered account. Accounts require admin approval
// before they may use the writing endpoints.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	FullName     string     `json:"full_name"`
	PasswordHash string     `json:"-"`
	IsApproved   bool       `json:"is_approved"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Project is a manuscript owned by a single user. Chapters is filled on
// the detail representation; list rows use ProjectListItem instead.
type Project struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Chapters    []Chapter  `json:"chapters"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ProjectListItem is the list representation of a project with its
// chapter count precomputed.
type ProjectListItem struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	ChapterCount int        `json:"chapter_count"`
}

// Chapter is a single chapter within a project. Order is the position of
// the chapter inside the project, starting at 0.
type Chapter struct {
	ID        int64      `json:"id"`
	ProjectID int64      `json:"project_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Order     int        `json:"order"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// UserSettings stores per-user preferences. CustomPrompts maps a writing
// style key to an override system prompt that replaces the built-in style
// text for that user's requests.
type UserSettings struct {
	ID            int64             `json:"id"`
	UserID        int64             `json:"user_id"`
	CustomPrompts map[string]string `json:"custom_prompts"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     *time.Time        `json:"updated_at,omitempty"`
}
