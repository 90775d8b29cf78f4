package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		Log            *logrus.Logger
		ZapLog         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App App
		JWT JWT
	}

	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		SMTP    SMTP
		Logger  Logger
	}

	App struct {
		Env                     string
		Port                    string
		Address                 string
		Timezone                string
		EndpointPrefix          string
		Version                 string
		MaxRequests             int
		ShutdownTimeout         int
		SessionExpTimeInHour    int
		BookingLockTTLInSeconds int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
