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

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository) *LikeHandler {
	return &LikeHandler{likeRepository: likeRepo}
}

// RegisterLikeRoutes registers like-related routes behind the session gate
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/dar_like/:id", h.LikePost)
	g.GET("/likes_post/:id", h.GetLikesForPost)
	g.DELETE("/eliminar_like/:id", h.UnlikePost)
}

// LikePost records the session user's like on a post. The pre-check gives the
// friendly 400; the unique index catches the racing insert, which maps to the
// same 400.
func (h *LikeHandler) LikePost(c echo.Context) error {
	current := middleware.CurrentUser(c)

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}
	userID, err := primitive.ObjectIDFromHex(current.UserID)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	ctx := c.Request().Context()

	exists, err := h.likeRepository.Exists(ctx, userID, postID)
	if err != nil {
		logger.Sugar.Errorw("dar_like: existence check failed", "post", c.Param("id"), "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}
	if exists {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Ya le diste like a este post",
		})
	}

	like := &models.Like{UserID: userID, PostID: postID}
	if err := h.likeRepository.Create(ctx, like); err != nil {
		if err == repositories.ErrDuplicate {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": "Ya le diste like a este post",
			})
		}
		logger.Sugar.Errorw("dar_like: insert failed", "post", c.Param("id"), "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Like agregado",
		"like":    like,
	})
}

// GetLikesForPost lists a post's likes with the liking user populated.
func (h *LikeHandler) GetLikesForPost(c echo.Context) error {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	likes, err := h.likeRepository.GetByPostWithUsers(c.Request().Context(), postID)
	if err != nil {
		logger.Sugar.Errorw("likes_post: query failed", "post", c.Param("id"), "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}
	if likes == nil {
		likes = []models.LikeWithUser{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_likes": len(likes),
		"likes":       likes,
	})
}

// UnlikePost removes the session user's like on a post. The acting user comes
// from the session, not the request body.
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	current := middleware.CurrentUser(c)

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}
	userID, err := primitive.ObjectIDFromHex(current.UserID)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	if err := h.likeRepository.Delete(c.Request().Context(), userID, postID); err != nil {
		if err == repositories.ErrNotFound {
			return c.String(http.StatusNotFound, "No le has dado like")
		}
		logger.Sugar.Errorw("eliminar_like: delete failed", "post", c.Param("id"), "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	return c.String(http.StatusOK, "Like eliminado")
}
