// Package cli defines the darkstar command tree.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "darkstar",
	Version: Version,
	Short:   "A text adventure aboard the freighter Tempus Fugit",
	Long: `Dark Star is a science fiction text adventure.

The year is 2276. You captain a small freighter on the spur lanes, where
help is weeks away and the ship's life support is your problem. Explore
the ship, work its security doors, keep the air breathable.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

var homeFlag string

func init() {
	RootCmd.PersistentFlags().StringVar(&homeFlag, "home", "", "darkstar home directory (default ~/.darkstar)")
}
