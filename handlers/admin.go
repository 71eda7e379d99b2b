package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"omnispa/utils"
)

// AdminListUsers returns every customer account.
func (hb *HandlerBundle) AdminListUsers(c *gin.Context) {
	users, err := hb.Users.ListAll()
	if err != nil {
		utils.GetLogger().Error("admin user listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list users", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
