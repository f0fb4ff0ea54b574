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

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository    repositories.PostRepository
	likeRepository    repositories.LikeRepository
	commentRepository repositories.CommentRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, likeRepo repositories.LikeRepository, commentRepo repositories.CommentRepository) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		likeRepository:    likeRepo,
		commentRepository: commentRepo,
	}
}

// RegisterPostRoutes registers post-related routes behind the session gate
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts_usuario/:id", h.GetPostsByUser)
	g.POST("/crear_post", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.PUT("/actualizar_post/:id", h.UpdatePost)
	g.GET("/post_por_id/:id", h.GetPost)
	g.DELETE("/eliminar_post/:id", h.DeletePost)
}

// GetPostsByUser lists a user's posts newest first. Zero results is a 404 with
// a fixed message.
func (h *PostHandler) GetPostsByUser(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	posts, err := h.postRepository.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		logger.Sugar.Errorw("posts_usuario: query failed", "usuario", c.Param("id"), "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	if len(posts) == 0 {
		return c.String(http.StatusNotFound, "No se encontraron posts")
	}
	return c.JSON(http.StatusOK, posts)
}

// CreatePost creates a post owned by the session user. Any owner field in the
// body is ignored, so authorship cannot be forged.
func (h *PostHandler) CreatePost(c echo.Context) error {
	current := middleware.CurrentUser(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	userID, err := primitive.ObjectIDFromHex(current.UserID)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	post := &models.Post{
		UserID:  userID,
		Title:   req.Title,
		Image:   req.Image,
		Content: req.Content,
	}

	if err := h.postRepository.Create(c.Request().Context(), post); err != nil {
		logger.Sugar.Errorw("crear_post: insert failed", "usuario", current.UserID, "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	return c.String(http.StatusCreated, "Post creado correctamente")
}

// GetPosts lists every post newest first with the owner populated.
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.GetAllWithAuthors(c.Request().Context())
	if err != nil {
		logger.Sugar.Errorw("posts: query failed", "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}
	if posts == nil {
		posts = []models.PostWithAuthor{}
	}
	return c.JSON(http.StatusOK, posts)
}

// UpdatePost overwrites titulo/imagen/contenido of an existing post. There is
// deliberately no ownership check: any authenticated user may edit any post.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	post, err := h.postRepository.Update(c.Request().Context(), id, &req)
	if err != nil {
		if err == repositories.ErrNotFound {
			return c.String(http.StatusNotFound, "Post no encontrado")
		}
		logger.Sugar.Errorw("actualizar_post: update failed", "post", c.Param("id"), "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Post actualizado correctamente",
		"post":    post,
	})
}

// GetPost retrieves a single post by id
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	post, err := h.postRepository.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return c.String(http.StatusNotFound, "No se encontró el post")
		}
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost removes a post and cascades to its likes and comments.
// Dependents go first: a crash mid-cascade leaves a post with fewer
// likes/comments, never orphaned records pointing at a missing post.
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	ctx := c.Request().Context()

	if _, err := h.postRepository.GetByID(ctx, id); err != nil {
		if err == repositories.ErrNotFound {
			return c.String(http.StatusNotFound, "Post no encontrado")
		}
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	if err := h.likeRepository.DeleteByPost(ctx, id); err != nil {
		logger.Sugar.Errorw("eliminar_post: like cascade failed", "post", c.Param("id"), "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}
	if err := h.commentRepository.DeleteByPost(ctx, id); err != nil {
		logger.Sugar.Errorw("eliminar_post: comment cascade failed", "post", c.Param("id"), "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	if err := h.postRepository.Delete(ctx, id); err != nil {
		if err == repositories.ErrNotFound {
			return c.String(http.StatusNotFound, "Post no encontrado")
		}
		logger.Sugar.Errorw("eliminar_post: delete failed", "post", c.Param("id"), "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	return c.String(http.StatusCreated, "Post eliminado")
}
