package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/atelierhq/atelier/config"
	"github.com/atelierhq/atelier/internal/app"
	"github.com/atelierhq/atelier/internal/db"
	"github.com/atelierhq/atelier/internal/db/repos"
	"github.com/atelierhq/atelier/internal/logger"
	"github.com/atelierhq/atelier/internal/services"
	"github.com/atelierhq/atelier/pkg/api/v1/handlers"
	"github.com/atelierhq/atelier/pkg/api/v1/routes"
)

func main() {
	// A .env file is optional; env vars win either way
	_ = godotenv.Load()

	logger.Initialize()

	gdb, err := db.New(db.Options{
		Path: config.GetEnv("ATELIER_DB_PATH", db.DefaultPath),
	})
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}

	ctx := context.Background()

	configService, err := services.NewConfigService(ctx, repos.NewConfigRepository(gdb))
	if err != nil {
		logger.Fatalf("failed to initialize config: %v", err)
	}

	// The attachments root comes from config unless overridden by env
	attachmentsRoot := config.GetEnv("ATELIER_ATTACHMENTS_DIR", "")
	if attachmentsRoot == "" {
		attachmentsRoot, err = configService.AttachmentsPath(ctx)
		if err != nil {
			logger.Fatalf("failed to resolve attachments path: %v", err)
		}
	}

	clientService := services.NewClientService(repos.NewClientRepository(gdb))
	attachmentService := services.NewAttachmentService(repos.NewAttachmentRepository(gdb), attachmentsRoot)
	paymentService := services.NewPaymentService(repos.NewPaymentRepository(gdb), attachmentService)
	jobRepo := repos.NewJobRepository(gdb)
	jobService := services.NewJobService(jobRepo, paymentService, attachmentService)
	jobTypeService := services.NewJobTypeService(repos.NewJobTypeRepository(gdb), jobRepo)

	rpcHandler := handlers.NewRPCHandler(
		clientService,
		jobService,
		jobTypeService,
		paymentService,
		attachmentService,
		configService,
	)

	fiberApp := app.NewApp(rpcHandler)

	port := config.GetEnv("ATELIER_PORT", routes.DefaultPort)
	logger.Infof("listening on :%s", port)
	if err := fiberApp.Listen(":" + port); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
