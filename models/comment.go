// File: /models/comment.go
package models

import (
	"time"
)

// CommentStatusApproved is the only status a comment ever has.
const CommentStatusApproved = "approved"

// Comment is attached to an arbitrary entity identified by ModelType and ModelID.
// The entity itself is never looked up.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	ModelID   string    `json:"model_id" gorm:"not null;size:191;index:idx_comments_model,priority:2"`
	ModelType string    `json:"model_type" gorm:"not null;size:100;index:idx_comments_model,priority:1"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"not null;size:32;default:approved"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}

// CommentResponse is the flattened view returned by create and list
type CommentResponse struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	ModelID   string      `json:"model_id"`
	ModelType string      `json:"model_type"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	User      UserSummary `json:"user"`
}

func (c Comment) Response() CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		ModelID:   c.ModelID,
		ModelType: c.ModelType,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		User:      c.User.Summary(),
	}
}

// CommentPage is one page of comments for a single entity
type CommentPage struct {
	Comments []CommentResponse `json:"comments"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Total    int64             `json:"total"`
}
