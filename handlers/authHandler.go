package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"orthonova/models"
	"orthonova/services"
	"orthonova/utils"
	"orthonova/views"
)

type AuthHandler struct {
	UserService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		UserService: userService,
	}
}

// Helper function to extract token from URL query parameters
func extractAccessToken(c *gin.Context) (string, error) {
	token := c.DefaultQuery("accessToken", "")
	if token == "" {
		return "", fmt.Errorf("access token is required")
	}
	return token, nil
}

// Login authenticates the user and returns tokens along with the session
// record and the views the role may reach.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		UserID   string `json:"user_id"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserService.AuthenticateUser(ctx, credentials.UserID, credentials.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid user ID or password"})
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(user.UserID, user.Role)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate tokens"})
		return
	}
	utils.SetAuthCookies(c, accessToken, refreshToken)

	c.JSON(200, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user":         user,
		"views":        views.ForRole(user.Role),
	})
}

// Session returns the current session: the authenticated user and the
// views its role may render. An unauthenticated caller gets the login view.
func (h *AuthHandler) Session(c *gin.Context) {
	token, err := extractAccessToken(c)
	if err != nil {
		c.JSON(200, gin.H{"user": nil, "views": views.ForRole("")})
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		c.JSON(200, gin.H{"user": nil, "views": views.ForRole("")})
		return
	}

	user, err := h.UserService.GetUserByUserID(c.Request.Context(), claims.UserID)
	if err != nil || user == nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}
	c.JSON(200, gin.H{"user": user, "views": views.ForRole(user.Role)})
}

// RefreshToken refreshes the user's access token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, err := extractAccessToken(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	claims, err := utils.ValidateToken(token, models.Roles()...)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid access token"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate access token"})
		return
	}

	c.JSON(200, gin.H{
		"accessToken": accessToken,
	})
}

// Logoff logs the user out by clearing cookies
func (h *AuthHandler) Logoff(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.Status(200)
}

// CreateUser handles new account creation (admin only, gated by the route).
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var form utils.UserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.UserService.ValidateAndCreateUser(c.Request.Context(), form)
	if err != nil {
		if validationErr(err) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err.Error() == "only one receptionist is allowed" || err.Error() == "user ID already registered" {
			c.JSON(409, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to add user."})
		return
	}
	c.JSON(201, user)
}

// ListUsers returns every account (admin only, gated by the route).
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(200, users)
}

// ChangePassword sets a new password for a user (admin only).
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var data struct {
		UserID      string `json:"user_id"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if data.UserID == "" || data.NewPassword == "" {
		c.JSON(400, gin.H{"error": "User ID and new password are required."})
		return
	}

	if err := h.UserService.UpdateUserPassword(c.Request.Context(), data.UserID, data.NewPassword); err != nil {
		c.JSON(500, gin.H{"error": "Failed to change password."})
		return
	}
	c.Status(200)
}

// DeleteUser removes an account (admin only).
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.UserService.DeleteUser(c.Request.Context(), id); err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete user account."})
		return
	}
	c.Status(200)
}

// SendResetCode mails a password reset code to the address on file.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var data struct {
		UserID string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserService.GetUserByUserID(ctx, data.UserID)
	if err != nil || user == nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}
	if user.Email == "" {
		c.JSON(400, gin.H{"error": "No email on file for this user"})
		return
	}

	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, user.UserID, code); err != nil {
		c.JSON(500, gin.H{"error": "Failed to set reset code"})
		return
	}
	if err := utils.SendResetCodeEmail(user.Email, code); err != nil {
		c.JSON(500, gin.H{"error": "Failed to send reset code email"})
		return
	}
	c.Status(200)
}

// ResetPassword changes a password given a valid emailed reset code.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var data struct {
		UserID      string `json:"user_id"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	storedCode, err := utils.GetResetCode(ctx, data.UserID)
	if err != nil || storedCode == nil || *storedCode != data.Code {
		c.JSON(401, gin.H{"error": "Invalid reset code"})
		return
	}

	if err := h.UserService.UpdateUserPassword(ctx, data.UserID, data.NewPassword); err != nil {
		c.JSON(500, gin.H{"error": "Failed to update password"})
		return
	}

	if err := utils.DeleteResetCode(ctx, data.UserID); err != nil {
		c.JSON(500, gin.H{"error": "Failed to clear reset code"})
		return
	}
	c.Status(200)
}
