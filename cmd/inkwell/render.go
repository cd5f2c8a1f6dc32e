package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-md/commonmark"
	"github.com/inkwell-md/commonmark/internal/config"
)

func newRenderCmd(cfg *config.Config) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a CommonMark file (or stdin) to HTML; only the first file argument is read",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cfg, args, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file path (- for stdout)")
	return cmd
}

func runRender(cfg *config.Config, args []string, output string) error {
	var src []byte
	var err error

	if len(args) == 0 || args[0] == "-" {
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	opts := commonmark.Options{
		MaxNestingDepth: cfg.MaxNestingDepth,
		UnsafeHTML:      cfg.UnsafeHTML,
	}
	html := commonmark.Convert(string(src), opts)

	if output == "" || output == "-" {
		_, err = os.Stdout.WriteString(html)
	} else {
		err = os.WriteFile(output, []byte(html), 0o644)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
