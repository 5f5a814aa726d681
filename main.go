package main

import (
	"context"
	"flag"

	"github.com/snapfeedhq/snapfeed/cmd"
	"github.com/snapfeedhq/snapfeed/internal/infra/cfg"
	"github.com/snapfeedhq/snapfeed/internal/infra/repository"
	"github.com/snapfeedhq/snapfeed/pkg/logs"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// go run . --service=web
// go run . --service=worker
// go run . --service=scheduler
// go run . --service=all
func main() {
	config := cfg.Get()

	client, err := mongo.Connect(options.Client().ApplyURI(config.ConfigDatabase.DbConn))
	if err != nil {
		panic(err)
	}

	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			panic(err)
		}
	}()

	repo := repository.NewRepository(client)

	service := flag.String("service", "all", "service to run")
	flag.Parse()

	switch *service {
	case "web":
		cmd.StartServer(repo, client)
	case "worker":
		cmd.StartWorker(repo)
	case "scheduler":
		cmd.StartScheduler()
	case "all":
		go cmd.StartServer(repo, client)
		go cmd.StartScheduler()
		cmd.StartWorker(repo)
	default:
		logs.Error("unknown service", "service", *service)
	}
}
