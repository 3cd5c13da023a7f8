// File: /repositories/comment_repository.go
package repositories

import (
	"context"

	"comments-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindByID loads a comment together with its owner
func (r *CommentRepository) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

// FindByModel returns one page of comments attached to the given entity and
// the total number attached to it. Rows come back in storage order.
func (r *CommentRepository) FindByModel(ctx context.Context, modelType, modelID string, offset, limit int) ([]models.Comment, int64, error) {
	scope := r.db.WithContext(ctx).
		Where("model_type = ? AND model_id = ?", modelType, modelID).
		Session(&gorm.Session{})

	var total int64
	if err := scope.Model(&models.Comment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	comments := []models.Comment{}
	if err := scope.
		Preload("User").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// UpdateContent overwrites content only; GORM bumps updated_at alongside it.
// A preloaded owner is never written back.
func (r *CommentRepository) UpdateContent(ctx context.Context, comment *models.Comment, content string) error {
	result := r.db.WithContext(ctx).
		Model(comment).
		Omit(clause.Associations).
		Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// MySQL reports changed rows, not matched rows, so an identical write
	// within the same timestamp tick affects nothing.
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
