package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"telemed-service/internal/app/config"
	"telemed-service/internal/app/delivery/http/middlewares"
	"telemed-service/internal/app/delivery/http/routers"
	"telemed-service/internal/app/drivers/database"
	"telemed-service/internal/app/drivers/logger"
	"telemed-service/internal/app/drivers/mailer"
	"telemed-service/internal/app/services/core/auth"
	"telemed-service/internal/app/services/core/bookings"
	"telemed-service/internal/app/services/core/dashboard"
	"telemed-service/internal/app/services/core/doctors"
	"telemed-service/internal/app/services/core/health"
	"telemed-service/internal/app/services/core/users"
	"telemed-service/internal/app/services/shared/locker"
	mailerService "telemed-service/internal/app/services/shared/mailer"
	"telemed-service/internal/app/services/shared/redis"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLog := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLog.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Log:            log,
		ZapLog:         zapLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Address + internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Infof("Server listening on %s", server.Addr)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.ZapLog)
	smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig)
	bookingNotifier := mailerService.NewMailerService(smtpClient, bootstrap.ZapLog)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLog, redisRepository, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.ZapLog, authUsecase)

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository)
	doctorController := doctors.NewDoctorController(bootstrap.ZapLog, doctorUsecase)

	// Booking
	bookingMongoRepository := bookings.NewBookingMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingMongoRepository,
		doctorMongoRepository,
		lockerService,
		bookingNotifier,
		bootstrap.InternalConfig,
		bootstrap.ZapLog,
	)
	bookingController := bookings.NewBookingController(bootstrap.ZapLog, bookingUsecase)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(doctorMongoRepository, bookingMongoRepository)
	dashboardController := dashboard.NewDashboardController(bootstrap.ZapLog, dashboardUsecase)

	// Health
	healthController := health.NewHealthController(bootstrap.ZapLog, bootstrap.MongoDB, bootstrap.Redis)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		doctorController,
		bookingController,
		dashboardController,
		healthController,
	)
}
