package main

import (
	"context"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/itchan-dev/forum/backend/internal/storage/pg"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

func newMigrateCommand() *cobra.Command {
	flags := configFlags()
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		Long: `Create every table and index the API needs.

Statements are idempotent, running the command against an up to date
database changes nothing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate(cmd.Context(), flags[configFolderFlag].GetString())
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

func migrate(ctx context.Context, configFolder string) error {
	cfg, err := config.Load(configFolder)
	if err != nil {
		return err
	}
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	db, err := sharedpg.Connect(ctx, cfg.Private.Pg, sharedpg.LightweightConnectionConfig())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := pg.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Log.Info("schema is up to date", "dbname", cfg.Private.Pg.Dbname)
	return nil
}
