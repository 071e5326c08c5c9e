package cmd

import (
	"log"

	"github.com/mixmini/mixmini/internal/repositories"
	"github.com/mixmini/mixmini/internal/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the static paint catalog (idempotent)",
	RunE: func(cmd *cobra.Command, args []string) error {
		repositories.ConnectDatabase()

		n, err := seed.Load(repositories.DB)
		if err != nil {
			return err
		}
		log.Printf("Seed complete: %d paints in catalog", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
