package handlers

import (
	"dental-center-server/internal/auth"
	"dental-center-server/internal/middleware"
	"dental-center-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	Gate *auth.Gate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(gate *auth.Gate) *AuthHandler {
	return &AuthHandler{Gate: gate}
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles user login against the demo allow-list. A credential
// mismatch gets the same generic message whether the email is unknown or the
// password is wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	ok, err := h.Gate.Login(req.Email, req.Password)
	if err != nil {
		utils.InternalServerError(c, "Something went wrong, please try again later")
		return
	}
	if !ok {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	user, _ := h.Gate.Current()
	utils.Success(c, "Login successful", user)
}

// Logout clears the persisted session unconditionally.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Gate.Logout()
	utils.Success(c, "Logout successful", nil)
}

// GetProfile handles fetching the currently signed-in user's session record.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	utils.Success(c, "Profile fetched successfully", user)
}
