package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"omnispa/services/owner"
	"omnispa/utils"
)

func (hb *HandlerBundle) RegisterOwner(c *gin.Context) {
	var req owner.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid registration payload", err.Error())
		return
	}

	created, err := hb.Owners.Register(req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (hb *HandlerBundle) LoginOwner(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid login payload", err.Error())
		return
	}

	token, created, err := hb.Owners.Login(req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid email or password", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "owner": created})
}

func (hb *HandlerBundle) LogoutOwner(c *gin.Context) {
	if err := hb.Owners.Logout(actorFrom(c).ID); err != nil {
		utils.GetLogger().Error("owner logout failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "logout failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (hb *HandlerBundle) CurrentOwner(c *gin.Context) {
	found, err := hb.Owners.GetByID(actorFrom(c).ID)
	if err != nil || found == nil {
		utils.JSONError(c, http.StatusNotFound, "owner not found", nil)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListOwnedSpas returns the authenticated owner's spas.
func (hb *HandlerBundle) ListOwnedSpas(c *gin.Context) {
	spas, err := hb.Spas.ListByOwner(actorFrom(c).ID)
	if err != nil {
		utils.GetLogger().Error("failed to list owned spas", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list spas", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"spas": spas})
}
