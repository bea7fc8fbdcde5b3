package cmd

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lloydmeta/docsproxy/internal/config"
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.AddCommand(showConfigCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show information",
	Long:  `Sometimes you just need to know more`,
}

var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config",
	Long:  `Renders the config that we end up using, with secrets masked`,
	Run: func(cmd *cobra.Command, args []string) {
		out, err := json.MarshalIndent(masked(appConfig), "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Error marshalling config to JSON")
		} else {
			log.Info().Msg(string(out))
		}
	},
}

var mask = "********"

func masked(app config.App) config.App {
	if app.Store.ApiKey != "" {
		app.Store.ApiKey = mask
	}
	if app.Store.User != nil {
		user := *app.Store.User
		user.Password = mask
		app.Store.User = &user
	}
	if app.ApmClient != nil && app.ApmClient.SecretToken != nil {
		apmClient := *app.ApmClient
		apmClient.SecretToken = &mask
		app.ApmClient = &apmClient
	}
	return app
}
