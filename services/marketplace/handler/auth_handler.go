package handler

import (
	"net/http"

	"campustrade/internal/marketerrors"
	"campustrade/services/marketplace/helpers"
	"campustrade/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service AuthServiceInterface
}

func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginHandler handles POST /auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "LoginHandler", "login failed", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "signed in successfully")
	helpers.LogSuccess("LoginHandler", "signed in successfully", map[string]any{"user_id": user.UserID})
}

// CurrentUserHandler handles GET /auth/me
func (h *AuthHandler) CurrentUserHandler(c *gin.Context) {
	user, ok := h.service.CurrentUser()
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrNoCurrentUser, "no user signed in")
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "current user retrieved successfully")
}

// LogoutHandler handles POST /auth/logout
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.service.Logout(); err != nil {
		helpers.HandleServiceError(c, "LogoutHandler", "logout failed", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "signed out successfully")
}
