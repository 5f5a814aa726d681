package cmd

import (
	"net/http"

	"github.com/hibiken/asynq"
	"github.com/snapfeedhq/snapfeed/internal/infra/cfg"
	"github.com/snapfeedhq/snapfeed/internal/infra/handler"
	"github.com/snapfeedhq/snapfeed/internal/infra/repository"
	"github.com/snapfeedhq/snapfeed/internal/service"
	"github.com/snapfeedhq/snapfeed/pkg/auth"
	"github.com/snapfeedhq/snapfeed/pkg/logs"
	"github.com/snapfeedhq/snapfeed/pkg/publisher"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// StartServer runs the web process: it serves the feedback and photo pages and
// enqueues deferred work. It never executes tasks itself.
func StartServer(repo *repository.MongoRepo, mongoClient *mongo.Client) {
	config := cfg.Get()

	client := asynq.NewClient(asynq.RedisClientOpt{Addr: config.Cache.CacheAddr})
	defer client.Close()

	pub := publisher.NewPublisher(client)
	svc := service.NewService(repo, pub)

	basicAuth := auth.NewBasicAuth(map[string]string{config.Admin.Username: config.Admin.Password})
	health := handler.NewHealthChecker(config.Cache.CacheAddr, mongoClient)
	handlers := handler.NewHandler(svc, basicAuth, health)

	mux := http.NewServeMux()
	for p, h := range handlers.GetRoutes() {
		mux.HandleFunc(p, h)
	}

	logs.Info("starting HTTP server", "addr", config.HTTPServer.Addr)
	if err := http.ListenAndServe(config.HTTPServer.Addr, mux); err != nil {
		panic(err)
	}
}
