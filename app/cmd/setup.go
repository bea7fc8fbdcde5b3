package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lloydmeta/docsproxy/internal/infra/apm/tracing"
	"github.com/lloydmeta/docsproxy/internal/infra/server"
)

var checkOnly bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run docsproxy setup",
	Long:  "Creates the configured database in the remote store if it does not exist yet",
	Run: func(cmd *cobra.Command, args []string) {
		tx := tracing.NewTracer().BackgroundTx("setup-database")
		defer tx.End()
		ctx := tx.Context()

		_, database, err := server.NewStore(appConfig.Store)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not set up the store client")
		}
		setup := server.NewSetup(database)
		if checkOnly {
			if err := setup.Check(ctx); err != nil {
				log.Fatal().Err(err).Msg("Setup is not complete")
			}
			log.Info().Msg("Setup is complete.")
			return
		}
		if err := setup.RunIfNeeded(ctx); err != nil {
			log.Fatal().Err(err).Msg("Setup failed")
		}
	},
}

func init() {
	setupCmd.Flags().BoolVar(&checkOnly, "check", false, "only check that setup is complete")
	rootCmd.AddCommand(setupCmd)
}
