// Command inkwell converts CommonMark to HTML: render a document, watch a
// directory and keep sibling .html files up to date, or serve a render API.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/inkwell-md/commonmark/internal/config"
)

func main() {
	cfg := config.New()
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "inkwell",
		Short:         "Convert CommonMark to HTML",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Load(configPath)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cfg.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newRenderCmd(cfg))
	rootCmd.AddCommand(newWatchCmd(cfg))
	rootCmd.AddCommand(newServeCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// printError colors the message when stderr is a terminal, matching the
// pack's go-isatty-gated diagnostic coloring.
func printError(err error) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "\x1b[31merror:\x1b[0m %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
