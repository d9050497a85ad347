package cmd

import (
	"fmt"
	"log"
	"os"

	"order-management/internal/data/repository"
	"order-management/pkg/database"
	"order-management/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "order-management",
	Short: "Order management web application",
	Long: `order-management serves the customer and admin dashboards and the order
screens. Without a subcommand it starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".env", "Path to the env file (missing file is ignored)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(setRoleCmd)
}

// runtime holds what every subcommand needs. close releases it.
type runtime struct {
	config *utils.Config
	logger *zap.Logger
	db     database.PgxIface
	repo   *repository.Repository
}

func (rt *runtime) close() {
	rt.db.Close()
	_ = rt.logger.Sync()
}

func bootstrap() (*runtime, error) {
	// Load config
	config, err := utils.LoadConfigFrom(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("Database connected successfully")

	return &runtime{
		config: config,
		logger: logger,
		db:     db,
		repo:   repository.NewRepository(db, logger),
	}, nil
}
