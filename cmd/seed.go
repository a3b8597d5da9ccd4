package cmd

import (
	"foodorder/configs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Load sample data (the built-in set unless a YAML file is given).",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.SeedFile
		if len(args) == 1 {
			path = args[0]
		}
		data, err := configs.LoadSeed(path)
		if err != nil {
			return err
		}

		db, err := configs.ConnectionDB(cfg.DBDriver, cfg.DBSource)
		if err != nil {
			return err
		}
		if err := configs.SetupDatabase(db); err != nil {
			return err
		}
		if err := configs.Seed(db, data); err != nil {
			return err
		}
		log.Info().Int("accounts", len(data.Accounts)).Int("restaurants", len(data.Restaurants)).Msg("seed done")
		return nil
	},
}
