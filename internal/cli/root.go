package cli

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	authservice "github.com/goserg/sportscheduler/auth/service"
	authsqlite "github.com/goserg/sportscheduler/auth/storage/sqlite"
	"github.com/goserg/sportscheduler/internal/config"
	"github.com/goserg/sportscheduler/internal/logger"
	"github.com/goserg/sportscheduler/internal/storage"
)

// NewRootCmd builds the scheduler command tree.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		cfg        config.Config
	)
	rootCmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Sport event scheduler",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.New(configPath)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the server config")

	rootCmd.AddCommand(newServeCmd(&cfg))
	rootCmd.AddCommand(newMigrateCmd(&cfg))
	rootCmd.AddCommand(newCreateAdminCmd(&cfg))
	return rootCmd
}

type deps struct {
	log  *logrus.Logger
	db   *sql.DB
	auth *authservice.Service
}

// open connects to the database, applies migrations and starts the auth service.
func open(ctx context.Context, cfg config.Config) (*deps, error) {
	l := logger.New(cfg.Server.Debug)
	db, err := storage.New(l, cfg.Server.SqliteFile)
	if err != nil {
		return nil, err
	}
	auth, err := authservice.New(ctx, l, cfg.Auth, authsqlite.New(l, db))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &deps{log: l, db: db, auth: auth}, nil
}
