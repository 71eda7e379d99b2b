package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"omnispa/models"
	"omnispa/utils"
)

func (hb *HandlerBundle) ListSpas(c *gin.Context) {
	var (
		spas []models.Spa
		err  error
	)
	if area := c.Query("area"); area != "" {
		spas, err = hb.Spas.ListByArea(area)
	} else {
		spas, err = hb.Spas.List()
	}
	if err != nil {
		utils.GetLogger().Error("failed to list spas", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list spas", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"spas": spas})
}

func (hb *HandlerBundle) GetSpa(c *gin.Context) {
	spa, err := hb.Spas.GetByID(c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("failed to fetch spa", zap.String("spaID", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch spa", nil)
		return
	}
	if spa == nil {
		utils.JSONError(c, http.StatusNotFound, "spa not found", nil)
		return
	}
	c.JSON(http.StatusOK, spa)
}

func (hb *HandlerBundle) CreateSpa(c *gin.Context) {
	var spa models.Spa
	if err := c.ShouldBindJSON(&spa); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid spa payload", err.Error())
		return
	}

	created, err := hb.Spas.Create(actorFrom(c).ID, &spa)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (hb *HandlerBundle) UpdateSpa(c *gin.Context) {
	var spa models.Spa
	if err := c.ShouldBindJSON(&spa); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid spa payload", err.Error())
		return
	}
	spa.ID = c.Param("id")

	if err := hb.Spas.Update(actorFrom(c), &spa); err != nil {
		utils.JSONError(c, http.StatusForbidden, err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "spa updated"})
}

func (hb *HandlerBundle) DeleteSpa(c *gin.Context) {
	if err := hb.Spas.Delete(actorFrom(c), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusForbidden, err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "spa deleted"})
}

// SetAvailability upserts one weekday's availability template.
func (hb *HandlerBundle) SetAvailability(c *gin.Context) {
	var entry models.DayAvailability
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid availability payload", err.Error())
		return
	}

	if err := hb.Spas.SetAvailability(actorFrom(c), c.Param("id"), entry); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability updated"})
}

// UploadSpaImage accepts a multipart form with an "image" file and an
// optional "caption" field.
func (hb *HandlerBundle) UploadSpaImage(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read image", nil)
		return
	}

	img, err := hb.Spas.AddImage(actorFrom(c), c.Param("id"), data, c.PostForm("caption"))
	if err != nil {
		utils.GetLogger().Error("spa image upload failed", zap.String("spaID", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload image", nil)
		return
	}
	c.JSON(http.StatusCreated, img)
}

func (hb *HandlerBundle) DeleteSpaImage(c *gin.Context) {
	if err := hb.Spas.RemoveImage(actorFrom(c), c.Param("id"), c.Param("publicId")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "image removed"})
}
