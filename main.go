package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"omnispa/config"
	"omnispa/cron"
	"omnispa/database"
	appointmentRepo "omnispa/database/repository/appointment"
	favoriteRepo "omnispa/database/repository/favorite"
	ownerRepo "omnispa/database/repository/owner"
	reviewRepo "omnispa/database/repository/review"
	spaRepo "omnispa/database/repository/spa"
	userRepo "omnispa/database/repository/user"
	"omnispa/handlers"
	"omnispa/routes"
	"omnispa/services/booking"
	"omnispa/services/notification"
	ownerService "omnispa/services/owner"
	reviewService "omnispa/services/review"
	spaService "omnispa/services/spa"
	"omnispa/services/storage"
	"omnispa/services/tasks"
	userService "omnispa/services/user"
	"omnispa/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Repositories.
	spas := spaRepo.NewMongoSpaRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()
	owners := ownerRepo.NewMongoOwnerRepo()
	users := userRepo.NewMongoUserRepo()
	favorites := favoriteRepo.NewMongoFavoriteRepo()
	reviews := reviewRepo.NewMongoReviewRepo()

	// Infrastructure services.
	store, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Fatal("failed to initialize image storage", zap.Error(err))
	}
	var sender notification.EmailSender
	if config.AppConfig.SendgridAPIKey != "" {
		sender = notification.NewSendGridSender()
	} else {
		logger.Warn("no SendGrid API key configured, emails will be discarded")
		sender = notification.NoopSender{}
	}
	notifier := notification.NewNotificationService(sender)
	reminders := tasks.NewAsynqScheduler()
	defer reminders.Close()

	// Domain services.
	engine := booking.NewEngine(spas, appointments, owners, notifier, reminders)
	spaSvc := spaService.NewSpaService(spas, store, utils.GetCacheClient())
	userSvc := userService.NewUserService(users, favorites, spas)
	ownerSvc := ownerService.NewOwnerService(owners)
	reviewSvc := reviewService.NewReviewService(reviews, spas, users, store)

	hb := handlers.NewHandlerBundle(engine, spaSvc, userSvc, ownerSvc, reviewSvc)

	go func() {
		if err := cron.StartReminderWorker(notifier); err != nil {
			logger.Error("reminder worker stopped", zap.Error(err))
		}
	}()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), utils.ErrorHandler())
	routes.RegisterRoutes(r, hb)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Error("mongo disconnect failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
