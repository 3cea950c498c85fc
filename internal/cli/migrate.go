package cli

import (
	"github.com/spf13/cobra"

	"github.com/goserg/sportscheduler/internal/config"
	"github.com/goserg/sportscheduler/internal/logger"
	"github.com/goserg/sportscheduler/internal/storage"
)

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := logger.New(cfg.Server.Debug)
			db, err := storage.New(l, cfg.Server.SqliteFile)
			if err != nil {
				return err
			}
			return db.Close()
		},
	}
}
