package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/mechriz/zen-fit/config"
	"github.com/mechriz/zen-fit/cron"
	"github.com/mechriz/zen-fit/database"
	appointmentRepo "github.com/mechriz/zen-fit/database/repository/appointment"
	"github.com/mechriz/zen-fit/handlers"
	"github.com/mechriz/zen-fit/middleware"
	"github.com/mechriz/zen-fit/models"
	"github.com/mechriz/zen-fit/routes"
	"github.com/mechriz/zen-fit/services/app"
	"github.com/mechriz/zen-fit/services/payment"
	"github.com/mechriz/zen-fit/services/tasks"
	"github.com/mechriz/zen-fit/services/therapist"
	"github.com/mechriz/zen-fit/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Token cache: Redis when configured, otherwise in process.
	var tokenCache utils.TokenCache = utils.NewMemoryTokenCache()
	var redisClient *redis.Client
	if config.AppConfig.RedisAddr != "" {
		if err := utils.InitAuthCache(); err != nil {
			logger.Warn("Redis auth cache unavailable, using in-memory cache", zap.Error(err))
		} else {
			redisClient = utils.AuthCacheClient
			tokenCache = utils.NewRedisTokenCache(redisClient)
		}
	}

	// Appointment archive.
	var archive appointmentRepo.AppointmentRepository
	var mongoClient *mongo.Client
	if config.AppConfig.DatabaseURL != "" {
		if err := database.InitDB(); err != nil {
			logger.Warn("MongoDB unavailable, appointment archive disabled", zap.Error(err))
		} else {
			mongoClient = database.MongoClient
			archive = appointmentRepo.NewMongoAppointmentRepo(database.Database())
		}
	}

	// Payments.
	payments := payment.NewProcessor()
	payments.Register(payment.MethodMpesa, payment.MpesaSimulator{Delay: config.PaymentDelay()})
	if config.AppConfig.StripeKey != "" {
		payments.Register(payment.MethodCard, payment.NewStripeGateway(config.AppConfig.StripeKey))
	}

	// Reminders.
	var reminders app.ReminderScheduler
	var reminderClient *asynq.Client
	var reminderWorker *asynq.Server
	if redisClient != nil {
		reminderClient = asynq.NewClient(cron.RedisQueueOpt())
		reminders = &tasks.AsynqReminderScheduler{Client: reminderClient, Lead: config.ReminderLead()}
		reminderWorker = cron.InitReminderWorker(ctx, cron.LogNotifier{})
	}

	appStore := app.NewAppStore()
	bookingService := &app.DefaultBookingService{
		Store:     appStore,
		Payments:  payments,
		Archive:   archive,
		Reminders: reminders,
	}

	therapistStore := therapist.NewTherapistStore(
		therapist.WithLoginDelay(config.LoginDelay()),
		therapist.WithTokenIssuer(func(t models.Therapist) (string, error) {
			return utils.GenerateToken(t.ID, t.Email, config.TokenTTL())
		}),
	)

	handlerBundle := &handlers.HandlerBundle{
		App: &handlers.AppHandler{
			Store:   appStore,
			Booking: bookingService,
			History: archive,
		},
		Therapist: &handlers.TherapistHandler{
			Store:  therapistStore,
			Tokens: tokenCache,
		},
	}

	monitor := utils.NewHealthMonitor(redisClient, mongoClient)
	monitor.Start(ctx, time.Minute)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware())
	routes.RegisterRoutes(router, handlerBundle, monitor)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("env", config.GetEnv()))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server is shutting down")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if reminderWorker != nil {
		reminderWorker.Shutdown()
	}
	if reminderClient != nil {
		reminderClient.Close()
	}
	if err := database.CloseDB(shutdownCtx); err != nil {
		logger.Warn("Failed to close MongoDB connection", zap.Error(err))
	}
	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("Server stopped gracefully")
}
