package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"omnispa/utils"
)

type registerUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (hb *HandlerBundle) RegisterUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid registration payload", err.Error())
		return
	}

	user, err := hb.Users.Register(req.Username, req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (hb *HandlerBundle) LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid login payload", err.Error())
		return
	}

	token, user, err := hb.Users.Login(req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid email or password", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (hb *HandlerBundle) LogoutUser(c *gin.Context) {
	if err := hb.Users.Logout(actorFrom(c)); err != nil {
		utils.GetLogger().Error("logout failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "logout failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (hb *HandlerBundle) CurrentUser(c *gin.Context) {
	user, err := hb.Users.GetByID(actorFrom(c).ID)
	if err != nil || user == nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", nil)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (hb *HandlerBundle) ToggleFavorite(c *gin.Context) {
	favorited, err := hb.Users.ToggleFavorite(actorFrom(c).ID, c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

func (hb *HandlerBundle) CheckFavorite(c *gin.Context) {
	favorited, err := hb.Users.IsFavorite(actorFrom(c).ID, c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("favorite check failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "favorite check failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

func (hb *HandlerBundle) ListFavorites(c *gin.Context) {
	spas, err := hb.Users.ListFavorites(actorFrom(c).ID)
	if err != nil {
		utils.GetLogger().Error("favorites listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list favorites", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"spas": spas})
}
