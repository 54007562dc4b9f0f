package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dream-go/godg/envconfig"
	"github.com/dream-go/godg/logutil"
	"github.com/dream-go/godg/version"
)

func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:     "godg",
		Short:   "SGF training example extractor",
		Version: version.Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
			slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show extractor library information",
		Args:  cobra.ExactArgs(0),
		RunE:  InfoHandler,
	}

	extractCmd := &cobra.Command{
		Use:   "extract FILE...",
		Short: "Extract training examples from SGF corpus files",
		Long:  "Extract training examples from SGF corpus files, one game record per line. Records the native extractor rejects are skipped.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  ExtractHandler,
	}
	extractCmd.Flags().StringP("output", "o", "", "Write extracted examples as CBOR records to this file")
	extractCmd.Flags().IntP("parallel", "p", 0, "Number of extraction workers (default DG_NUM_PARALLEL, or one per CPU)")

	rootCmd.AddCommand(
		infoCmd,
		extractCmd,
	)

	return rootCmd
}
