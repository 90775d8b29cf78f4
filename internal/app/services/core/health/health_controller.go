package health

import (
	"context"
	"net/http"
	"telemed-service/internal/pkg/constvars"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type HealthController struct {
	Log     *zap.Logger
	MongoDB *mongo.Client
	Redis   *redis.Client
}

func NewHealthController(logger *zap.Logger, mongoClient *mongo.Client, redisClient *redis.Client) *HealthController {
	return &HealthController{
		Log:     logger,
		MongoDB: mongoClient,
		Redis:   redisClient,
	}
}

type status struct {
	Status  string `json:"status"`
	MongoDB string `json:"mongodb"`
	Redis   string `json:"redis"`
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result := status{Status: "ok", MongoDB: "up", Redis: "up"}
	code := constvars.StatusOK

	if err := ctrl.MongoDB.Ping(ctx, readpref.Primary()); err != nil {
		ctrl.Log.Error("health check mongodb ping failed", zap.Error(err))
		result.Status = "degraded"
		result.MongoDB = "down"
		code = constvars.StatusServiceUnavailable
	}

	if err := ctrl.Redis.Ping(ctx).Err(); err != nil {
		ctrl.Log.Error("health check redis ping failed", zap.Error(err))
		result.Status = "degraded"
		result.Redis = "down"
		code = constvars.StatusServiceUnavailable
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(result)
}
