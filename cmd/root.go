package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mixmini",
	Short: "Miniature paint inventory & recipe manager",
	Long: `MixMini is a server-rendered web application for tabletop miniature
painters: catalog the paints you own, author mix recipes, and see which
recipe ingredients you still need to buy.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
