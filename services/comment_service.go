// File: /services/comment_service.go
package services

import (
	"context"
	"errors"
	"math"

	"comments-api/models"
	"comments-api/repositories"
	"comments-api/utils"

	"github.com/google/uuid"
)

type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id string) (*models.Comment, error)
	FindByModel(ctx context.Context, modelType, modelID string, offset, limit int) ([]models.Comment, int64, error)
	UpdateContent(ctx context.Context, comment *models.Comment, content string) error
}

type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type CommentService struct {
	comments CommentStore
	users    UserFinder
}

func NewCommentService(comments CommentStore, users UserFinder) *CommentService {
	return &CommentService{
		comments: comments,
		users:    users,
	}
}

type CreateCommentInput struct {
	ModelID   string
	ModelType string
	Content   string
}

type UpdateCommentInput struct {
	Content string
}

// CreateComment attaches a new approved comment owned by userID to the given entity.
func (s *CommentService) CreateComment(ctx context.Context, userID string, input CreateCommentInput) (*models.CommentResponse, error) {
	if utils.IsBlank(input.Content) {
		return nil, validationError("Comment cannot be empty")
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:        uuid.NewString(),
		ModelID:   input.ModelID,
		ModelType: input.ModelType,
		Content:   input.Content,
		Status:    models.CommentStatusApproved,
		UserID:    user.ID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, internalError("An error occurred while creating the comment", err)
	}
	comment.User = *user

	response := comment.Response()
	return &response, nil
}

// GetComments returns a page of comments attached to one entity. page and
// limit below 1 fall back to 1 and 10.
func (s *CommentService) GetComments(ctx context.Context, modelType, modelID string, page, limit int) (*models.CommentPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	comments, total, err := s.comments.FindByModel(ctx, modelType, modelID, pageOffset(page, limit), limit)
	if err != nil {
		return nil, internalError("An error occurred while fetching comments", err)
	}

	responses := make([]models.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, comment.Response())
	}

	return &models.CommentPage{
		Comments: responses,
		Page:     page,
		Limit:    limit,
		Total:    total,
	}, nil
}

// pageOffset saturates at math.MaxInt so a huge page reads past the end
// instead of wrapping to a negative offset.
func pageOffset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

func (s *CommentService) GetCommentByID(ctx context.Context, commentID string) (*models.Comment, error) {
	return s.findComment(ctx, commentID)
}

// UpdateComment replaces the content of a comment. Only its owner may do so.
func (s *CommentService) UpdateComment(ctx context.Context, userID, commentID string, input UpdateCommentInput) (*models.Comment, error) {
	if utils.IsBlank(input.Content) {
		return nil, validationError("Comment cannot be empty")
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment, err := s.findComment(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.UserID != user.ID {
		return nil, forbiddenError("You do not have permission to update this comment")
	}

	if err := s.comments.UpdateContent(ctx, comment, input.Content); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundError("Comment not found")
		}
		return nil, internalError("An error occurred while updating the comment", err)
	}

	return s.findComment(ctx, commentID)
}

func (s *CommentService) findUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundError("User not found")
		}
		return nil, internalError("An error occurred while loading the user", err)
	}
	return user, nil
}

func (s *CommentService) findComment(ctx context.Context, commentID string) (*models.Comment, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundError("Comment not found")
		}
		return nil, internalError("An error occurred while fetching the comment", err)
	}
	return comment, nil
}
