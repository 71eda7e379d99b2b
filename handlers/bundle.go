package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omnispa/middleware"
	"omnispa/models"
	"omnispa/services/booking"
	"omnispa/services/owner"
	"omnispa/services/review"
	"omnispa/services/spa"
	"omnispa/services/user"
	"omnispa/utils"
)

// HandlerBundle aggregates all services so route registration gets one
// injection point.
type HandlerBundle struct {
	Booking booking.Engine
	Spas    spa.SpaService
	Users   user.UserService
	Owners  owner.OwnerService
	Reviews review.ReviewService
}

func NewHandlerBundle(bk booking.Engine, spas spa.SpaService, users user.UserService,
	owners owner.OwnerService, reviews review.ReviewService) *HandlerBundle {
	return &HandlerBundle{
		Booking: bk,
		Spas:    spas,
		Users:   users,
		Owners:  owners,
		Reviews: reviews,
	}
}

// actorFrom rebuilds the request actor set by the auth middleware.
func actorFrom(c *gin.Context) models.Actor {
	return models.Actor{
		Role: models.ActorRole(c.GetString(middleware.ContextRoleKey)),
		ID:   c.GetString(middleware.ContextSubjectKey),
	}
}

// respondBookingError maps the engine's error taxonomy onto HTTP statuses:
// validation 400, conflict 409, anything else 500.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case booking.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), nil)
	case booking.IsConflict(err):
		utils.JSONError(c, http.StatusConflict, err.Error(), nil)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
