// File: handlers/handler.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"entrega/database"
	"entrega/utils"
)

// respondDBError classifies a backend failure and answers with the category's
// fixed user-facing message. Raw detail goes to the log, never to the client.
func respondDBError(c *gin.Context, err error) {
	cat := database.Classify(err)
	utils.GetLogger().Error("Backend call failed",
		zap.String("category", string(cat)), zap.Error(err))
	c.JSON(database.HTTPStatus(cat), gin.H{"error": database.UserMessage(cat)})
}
