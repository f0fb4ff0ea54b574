package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dcampos/red-social-backend/internal/middleware"
	"github.com/dcampos/red-social-backend/internal/models"
	"github.com/dcampos/red-social-backend/internal/repositories"
	"github.com/dcampos/red-social-backend/pkg/logger"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository) *CommentHandler {
	return &CommentHandler{commentRepository: commentRepo}
}

// RegisterCommentRoutes registers comment-related routes behind the session gate
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/comentar/:id", h.CreateComment)
	g.GET("/comentarios/:id", h.GetCommentsForPost)
	g.DELETE("/eliminar_comentario/:id", h.DeleteComment)
}

// CreateComment records a comment on a post. The author is the session user,
// not a body-supplied id.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	current := middleware.CurrentUser(c)

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}
	userID, err := primitive.ObjectIDFromHex(current.UserID)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	comment := &models.Comment{
		UserID:  userID,
		PostID:  postID,
		Content: req.Content,
	}

	if err := h.commentRepository.Create(c.Request().Context(), comment); err != nil {
		logger.Sugar.Errorw("comentar: insert failed", "post", c.Param("id"), "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Comentario creado",
		"comentarios": comment,
	})
}

// GetCommentsForPost lists a post's comments newest first with the author
// populated.
func (h *CommentHandler) GetCommentsForPost(c echo.Context) error {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	comments, err := h.commentRepository.GetByPostWithUsers(c.Request().Context(), postID)
	if err != nil {
		logger.Sugar.Errorw("comentarios: query failed", "post", c.Param("id"), "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}
	if comments == nil {
		comments = []models.CommentWithAuthor{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_comentarios": len(comments),
		"comentarios":       comments,
	})
}

// DeleteComment removes a comment by id. No cascade: nothing references a
// comment.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	if err := h.commentRepository.Delete(c.Request().Context(), id); err != nil {
		if err == repositories.ErrNotFound {
			return c.String(http.StatusNotFound, "No se econtro el comentario")
		}
		logger.Sugar.Errorw("eliminar_comentario: delete failed", "comentario", c.Param("id"), "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	return c.String(http.StatusOK, "comentario eliminado")
}
