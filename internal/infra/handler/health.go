package handler

import (
	"encoding/json"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// HealthChecker pings the two external dependencies the web process needs:
// the broker (Redis) and the database (Mongo).
type HealthChecker struct {
	redis *redis.Client
	mongo *mongo.Client
}

func NewHealthChecker(redisAddr string, mongoClient *mongo.Client) *HealthChecker {
	return &HealthChecker{
		redis: redis.NewClient(&redis.Options{Addr: redisAddr}),
		mongo: mongoClient,
	}
}

type healthStatus struct {
	Status string `json:"status"`
	Broker string `json:"broker"`
	DB     string `json:"db"`
}

func (h Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{Status: "ok", Broker: "ok", DB: "ok"}
	code := http.StatusOK

	if err := h.health.redis.Ping(r.Context()).Err(); err != nil {
		status.Status = "degraded"
		status.Broker = err.Error()
		code = http.StatusServiceUnavailable
	}

	if err := h.health.mongo.Ping(r.Context(), readpref.Primary()); err != nil {
		status.Status = "degraded"
		status.DB = err.Error()
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(status)
}
