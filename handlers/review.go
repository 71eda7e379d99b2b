package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"omnispa/utils"
)

// CreateReview accepts a multipart form: "rating", "comment" and up to three
// "images" files.
func (hb *HandlerBundle) CreateReview(c *gin.Context) {
	rating, err := strconv.Atoi(c.PostForm("rating"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "rating must be a number", nil)
		return
	}

	var images [][]byte
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["images"] {
			f, err := fh.Open()
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "failed to read review image", nil)
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "failed to read review image", nil)
				return
			}
			images = append(images, data)
		}
	}

	review, err := hb.Reviews.Create(actorFrom(c).ID, c.Param("id"), rating, c.PostForm("comment"), images)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (hb *HandlerBundle) ListReviews(c *gin.Context) {
	reviews, err := hb.Reviews.ListBySpa(c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("review listing failed", zap.String("spaID", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reviews", nil)
		return
	}

	average, count, err := hb.Reviews.AverageRating(c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("rating aggregation failed", zap.String("spaID", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reviews", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reviews":        reviews,
		"average_rating": average,
		"review_count":   count,
	})
}
