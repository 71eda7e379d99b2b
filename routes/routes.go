package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"omnispa/handlers"
	"omnispa/middleware"
)

// RegisterRoutes wires every endpoint onto the engine. Public routes serve
// the directory and booking flow; authenticated groups gate account and
// management operations.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimiter())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public directory and booking flow.
	api.GET("/spas", hb.ListSpas)
	api.GET("/spas/:id", hb.GetSpa)
	api.GET("/spas/:id/availability", hb.GetAvailability)
	api.GET("/spas/:id/reviews", hb.ListReviews)
	api.GET("/search", hb.Search)
	api.GET("/search/suggestions", hb.Suggest)
	api.GET("/quiz/options", hb.QuizOptions)
	api.POST("/quiz", hb.Quiz)
	api.POST("/appointments", hb.CreateAppointment)

	// Customer accounts.
	users := api.Group("/users")
	{
		users.POST("/register", hb.RegisterUser)
		users.POST("/login", hb.LoginUser)

		authed := users.Group("", middleware.RequireAuth("user"))
		authed.POST("/logout", hb.LogoutUser)
		authed.GET("/me", hb.CurrentUser)
		authed.GET("/favorites", hb.ListFavorites)
	}

	userActions := api.Group("", middleware.RequireAuth("user"))
	{
		userActions.POST("/spas/:id/favorite", hb.ToggleFavorite)
		userActions.GET("/spas/:id/favorite", hb.CheckFavorite)
		userActions.POST("/spas/:id/reviews", hb.CreateReview)
	}

	// Spa operators.
	owners := api.Group("/owners")
	{
		owners.POST("/register", hb.RegisterOwner)
		owners.POST("/login", hb.LoginOwner)

		authed := owners.Group("", middleware.RequireAuth("owner"))
		authed.POST("/logout", hb.LogoutOwner)
		authed.GET("/me", hb.CurrentOwner)
		authed.GET("/spas", hb.ListOwnedSpas)
	}

	// Admin operations. RequireAuth lets admins through every owner gate too,
	// so spa deletion is already reachable for them.
	admin := api.Group("/admin", middleware.RequireAuth("admin"))
	{
		admin.GET("/users", hb.AdminListUsers)
	}

	manage := api.Group("", middleware.RequireAuth("owner"))
	{
		manage.POST("/spas", hb.CreateSpa)
		manage.PUT("/spas/:id", hb.UpdateSpa)
		manage.DELETE("/spas/:id", hb.DeleteSpa)
		manage.PUT("/spas/:id/availability", hb.SetAvailability)
		manage.POST("/spas/:id/images", hb.UploadSpaImage)
		manage.DELETE("/spas/:id/images/:publicId", hb.DeleteSpaImage)
	}
}
