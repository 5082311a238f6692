package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cloud-gateway/internal/api"
	"cloud-gateway/internal/awsclient"
	"cloud-gateway/internal/config"
	"cloud-gateway/internal/s3"
	"cloud-gateway/internal/server"
)

func main() {

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	cfg, err := config.Load(config.S3Service)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := server.NewLogger(os.Stdout, cfg.LogLevel, cfg.Service)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	awsCfg, err := awsclient.Load(ctx, awsclient.Options{
		Region:    cfg.Region,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
	})
	if err != nil {
		log.Fatalf("Could not load AWS config: %v", err)
	}

	s3Store := s3.NewFileStore(awsCfg, cfg.Endpoint)

	if cfg.LocalSafe() {
		logger.Warn("BUCKET_NAME is not set, uploads will be skipped")
	}

	svc := api.NewUploadService(cfg.Service, cfg.Target, s3Store, logger)
	router := api.NewRouter(api.NewAPIHandler(svc, cfg.BasePath, logger))

	if err := server.Run(ctx, cfg.Addr, router, logger); err != nil {
		log.Fatalf("S3 service stopped: %v", err)
	}
}
