package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appErr "tambula/internal/pkg/errors"
	"tambula/internal/pkg/response"
	"tambula/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, bindErrors(err))
		return
	}
	if err := h.auth.Register(c.Request.Context(), req.Username, req.Password, req.Email, req.Name); err != nil {
		if errors.Is(err, appErr.ErrConflict) {
			logError(c, err)
			response.Error(c, http.StatusBadRequest, "username or email already exists")
			return
		}
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "user registered successfully"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, bindErrors(err))
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token})
}

// Logout is advisory: tokens are stateless and nothing is invalidated
// server side, the client is simply told to drop its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success(c, gin.H{"message": "logged out, discard the token"})
}
