// File: /controllers/comment_controller.go
package controllers

import (
	"comments-api/middleware"
	"comments-api/services"
	"comments-api/utils"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

type CreateCommentRequest struct {
	ModelID   string `json:"model_id" binding:"required,uuid"`
	ModelType string `json:"model_type" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type ListCommentsQuery struct {
	ModelType string `form:"model_type" binding:"required"`
	ModelID   string `form:"model_id" binding:"required"`
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	comment, err := cc.comments.CreateComment(c.Request.Context(), userID, services.CreateCommentInput{
		ModelID:   req.ModelID,
		ModelType: req.ModelType,
		Content:   req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendCreated(c, "Created comment successfully", comment)
}

func (cc *CommentController) GetComments(c *gin.Context) {
	var query ListCommentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	page, limit := utils.ParsePagination(c)

	result, err := cc.comments.GetComments(c.Request.Context(), query.ModelType, query.ModelID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendPaginated(c, "Comments fetched successfully", result.Comments, result.Page, result.Limit, result.Total)
}

func (cc *CommentController) GetComment(c *gin.Context) {
	comment, err := cc.comments.GetCommentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, "Comment fetched successfully", comment)
}

func (cc *CommentController) UpdateComment(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	comment, err := cc.comments.UpdateComment(c.Request.Context(), userID, c.Param("id"), services.UpdateCommentInput{
		Content: req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, "Comment updated successfully", comment)
}
