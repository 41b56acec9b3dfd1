package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/andyle182810/signkit/logutil"
)

var logLevel string

var (
	okLabel    = color.New(color.FgGreen)
	errorLabel = color.New(color.FgRed)
)

var rootCmd = &cobra.Command{
	Use:   "signkit [command] [flags]",
	Short: "Command line client for the document-signing API",
	Long: `signkit is a command line client for the document-signing API.

Examples:
  # Remove a document
  signkit remove-document CLIENT_ID CLIENT_SECRET USERNAME PASSWORD DOCUMENT_ID

  # Cancel pending invites first, against the sandbox environment
  signkit remove-document CLIENT_ID CLIENT_SECRET USERNAME PASSWORD DOCUMENT_ID --cancel-invites --dev`,
	SilenceErrors:    true,
	SilenceUsage:     true,
	PersistentPreRun: setupLogging,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func setupLogging(_ *cobra.Command, _ []string) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger() //nolint:exhaustruct
	zerolog.SetGlobalLevel(logutil.ParseZerologLevel(logLevel))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newRemoveDocumentCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = errorLabel.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
