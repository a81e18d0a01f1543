package main

import (
	"context"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/flowfox-labs/finance-server/api"
	"github.com/flowfox-labs/finance-server/internal/config"
	"github.com/flowfox-labs/finance-server/internal/logging"
	"github.com/flowfox-labs/finance-server/internal/operator"
	"github.com/flowfox-labs/finance-server/internal/operator/actions"
	"github.com/flowfox-labs/finance-server/internal/service"
	"github.com/flowfox-labs/finance-server/internal/storage"
)

func main() {
	// Optional .env for local runs; real environments set variables directly.
	_ = godotenv.Load()

	logger := logging.SetupLogging()
	logrus.Info("finance-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	csvStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	op := operator.NewOperatorDelegator(csvStorage)
	op.Start()
	defer op.Stop()

	if envConfig.SeedOnStart {
		if err := op.Process(context.Background(), &actions.SeedDefaults{}); err != nil {
			logrus.WithError(err).Fatal("actions.SeedDefaults")
			return
		}
	}

	svc := service.NewService(csvStorage)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Service:  svc,
			Operator: op,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
