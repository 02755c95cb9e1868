package cmd

import (
	"os"

	"github.com/BrandonKowalski/battleground/pkg/battleground/constants"
	"github.com/spf13/cobra"
)

var (
	// Build info - set via -ldflags at build time
	Version   = "dev"
	CommitID  = "unknown"
	BuildDate = "unknown"

	lang string
)

var rootCmd = &cobra.Command{
	Use:           "battleground",
	Short:         "Theme switching 3D promo scene",
	Long:          `battleground shows a promo scene that switches between visual themes with animated transitions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lang, "lang", os.Getenv(constants.LanguageEnvVar), "language for the prompt and subtitles (en, es)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(versionCmd)
}
