package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dcampos/red-social-backend/internal/middleware"
	"github.com/dcampos/red-social-backend/internal/models"
	"github.com/dcampos/red-social-backend/internal/repositories"
	"github.com/dcampos/red-social-backend/internal/session"
	"github.com/dcampos/red-social-backend/pkg/logger"
	"github.com/dcampos/red-social-backend/pkg/security"
)

// CookieSettings controls the session cookie attributes, which differ between
// the production deployment (cross-site frontend) and local development.
type CookieSettings struct {
	Name       string
	TTL        time.Duration
	Production bool
}

// AuthHandler handles registration, login, profile and logout
type AuthHandler struct {
	userRepository repositories.UserRepository
	sessions       session.Store
	cookie         CookieSettings
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, sessions session.Store, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		sessions:       sessions,
		cookie:         cookie,
	}
}

// RegisterPublicRoutes registers the routes that do not pass the session gate
func (h *AuthHandler) RegisterPublicRoutes(e *echo.Echo) {
	e.POST("/registrar", h.Register)
	e.POST("/iniciar_sesion", h.Login)
}

// RegisterProtectedRoutes registers the account routes behind the session gate
func (h *AuthHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/mi_perfil", h.Profile)
	g.POST("/cerrar_sesion", h.Logout)
}

// Register creates a new user account. Name and email collisions surface the
// unique-index error in the 500 body, matching the registration contract.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Sugar.Errorw("registrar: bad payload", "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}
	if err := c.Validate(&req); err != nil {
		logger.Sugar.Errorw("registrar: validation failed", "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		logger.Sugar.Errorw("registrar: hashing failed", "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Photo:    req.Photo,
	}
	if user.Photo == "" {
		user.Photo = models.DefaultPhotoURL
	}

	if err := h.userRepository.Create(c.Request().Context(), user); err != nil {
		logger.Sugar.Errorw("registrar: insert failed", "nombre", req.Name, "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	return c.String(http.StatusCreated, "Usuario registrado correctamente")
}

// Login verifies credentials and establishes a server-side session, handing
// the client its token in an HTTP-only cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Sugar.Errorw("iniciar_sesion: bad payload", "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	user, err := h.userRepository.GetByName(c.Request().Context(), req.Name)
	if err != nil {
		if err == repositories.ErrNotFound {
			return c.String(http.StatusNotFound, "Usuario no encontrado")
		}
		logger.Sugar.Errorw("iniciar_sesion: lookup failed", "nombre", req.Name, "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	if err := security.VerifyPassword(user.Password, req.Password); err != nil {
		return c.String(http.StatusUnauthorized, "Contraseña incorrecta")
	}

	token, err := h.sessions.Create(c.Request().Context(), session.Data{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
	})
	if err != nil {
		logger.Sugar.Errorw("iniciar_sesion: session create failed", "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	c.SetCookie(h.sessionCookie(token, int(h.cookie.TTL.Seconds())))
	return c.String(http.StatusOK, "Hola "+user.Name)
}

// Profile returns the session user's record, looked up fresh from storage.
func (h *AuthHandler) Profile(c echo.Context) error {
	current := middleware.CurrentUser(c)

	id, err := primitive.ObjectIDFromHex(current.UserID)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	user, err := h.userRepository.GetByID(c.Request().Context(), id)
	if err != nil {
		logger.Sugar.Errorw("mi_perfil: lookup failed", "id", current.UserID, "error", err)
		return c.String(http.StatusInternalServerError, "Error: "+err.Error())
	}

	return c.JSON(http.StatusOK, user)
}

// Logout destroys the session and expires the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(h.cookie.Name)
	if err == nil {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil && err != session.ErrNotFound {
			logger.Sugar.Errorw("cerrar_sesion: destroy failed", "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"success": false,
				"message": "Error al cerrar sesion",
			})
		}
	}

	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Sesion Cerrada",
	})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.cookie.Production {
		// cross-site frontend needs SameSite=None, which requires Secure
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}
