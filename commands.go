package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"marketboard/internal/config"
	"marketboard/internal/ratelimit"
	"marketboard/internal/render"
	"marketboard/internal/server"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "board.html", "The HTML file to write the board to.")

	rootCmd.AddCommand(showCmd, exportCmd, serveCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Fetches prices once and prints the three panels.",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := loadPage(cmd)
		if err != nil {
			return err
		}

		render.WriteTable(cmd.OutOrStdout(), page)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [--out <path/to/board.html>]",
	Short: "Fetches prices once and writes the board as an HTML page.",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := loadPage(cmd)
		if err != nil {
			return err
		}

		err = writeFile(exportOut, func(w io.Writer) error {
			return render.WriteHTML(w, page)
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Board written to %s\n", exportOut)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the board over HTTP, refreshing prices on every page load.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// requests over budget are rejected by the server instead of waiting
		p, err := newPipeline(cfg, nil)
		if err != nil {
			return err
		}

		limiter := ratelimit.New(cfg.RefreshPerMinute, 1)
		return server.New(p, limiter, cfg.SourceURL).ListenAndServe(cmd.Context(), cfg.ListenAddr)
	},
}

// loadPage runs the pipeline once onto a fresh page.
// A failed run is not a command error: the page carries the error notice.
func loadPage(cmd *cobra.Command) (*render.Page, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	p, err := newPipeline(cfg, ratelimit.New(cfg.RefreshPerMinute, 1))
	if err != nil {
		return nil, err
	}

	page := render.NewPage()
	p.Load(cmd.Context(), page.Board())
	return page, nil
}

// writeFile creates path and fills it with write.
// The file is removed if it could not be written completely.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return write(f)
}
