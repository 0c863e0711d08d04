// File: handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"entrega/services/user"
	"entrega/utils"
)

var userService user.UserService

// SetUserService wires the user service used by the package-level handlers.
func SetUserService(svc user.UserService) {
	userService = svc
}

// RegisterUserHandler creates an operator account.
func RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := userService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		logger.Warn("Registration failed", zap.String("email", req.Email), zap.Error(err))
		respondDBError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler signs an operator in.
func AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	resp, err := userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
