package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/kathiroli/travel-claim/internal/calc"
	"github.com/kathiroli/travel-claim/internal/claims"
	"github.com/kathiroli/travel-claim/internal/config"
	httpserver "github.com/kathiroli/travel-claim/internal/interfaces/http"
	"github.com/kathiroli/travel-claim/internal/rates"
	"github.com/kathiroli/travel-claim/internal/render"
	"github.com/kathiroli/travel-claim/internal/report"
	"github.com/kathiroli/travel-claim/internal/repository"
	"github.com/kathiroli/travel-claim/pkg/database"
	"github.com/kathiroli/travel-claim/pkg/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Travel Claim System",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	// Initialize database
	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	migrator := database.NewMigrator(db, logger)
	if err := migrator.Run(); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Create export directory
	if err := os.MkdirAll(cfg.Export.OutputDir, 0755); err != nil {
		logger.Fatal("Failed to create export directory", zap.Error(err))
	}

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db.DB, logger)
	claimRepo := repository.NewClaimRepository(db.DB, logger)

	// Initialize calculation and report pipeline
	rateTable := rates.New(cfg.RatesConfig())
	calculator := calc.NewCalculator(rateTable)
	engine := report.NewEngine(calculator, cfg.ReportLayout(), cfg.Organization.Name, logger)
	excelWriter := render.NewExcelRenderer(logger)

	// Initialize claim service
	service := claims.NewService(
		employeeRepo,
		claimRepo,
		calculator,
		engine,
		excelWriter,
		cfg.Export.OutputDir,
		logger,
	)

	// Initialize HTTP server
	server := httpserver.NewServer(httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, service, logger)

	// Run until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}
