package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"omnispa/services/spa"
	"omnispa/utils"
)

// Suggest serves search-box typeahead for ?q=.
func (hb *HandlerBundle) Suggest(c *gin.Context) {
	suggestions, err := hb.Spas.Suggest(c.Query("q"))
	if err != nil {
		utils.GetLogger().Error("suggestion lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// Search runs the full directory search for ?q=.
func (hb *HandlerBundle) Search(c *gin.Context) {
	results, err := hb.Spas.Search(c.Query("q"))
	if err != nil {
		utils.GetLogger().Error("search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	c.JSON(http.StatusOK, results)
}

// QuizOptions returns the choices the quiz form presents.
func (hb *HandlerBundle) QuizOptions(c *gin.Context) {
	opts, err := hb.Spas.Options()
	if err != nil {
		utils.GetLogger().Error("quiz options aggregation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load quiz options", nil)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// Quiz returns service recommendations for the visitor's quiz answers.
func (hb *HandlerBundle) Quiz(c *gin.Context) {
	var answers spa.QuizAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid quiz payload", err.Error())
		return
	}

	recs, err := hb.Spas.Recommend(answers)
	if err != nil {
		utils.GetLogger().Error("quiz recommendation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "recommendation failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
