package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagemill/outliner"
	"github.com/pagemill/outliner/export"
	"github.com/pagemill/outliner/outline"
)

var (
	cfgFile    string
	outputPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "outliner [input.pdf]",
	Short: "Infer a document outline from a PDF",
	Long: `Outliner reads a PDF and produces its outline as JSON: a document
title plus H1/H2/H3 headings with their page numbers.

When the PDF carries an author-supplied bookmark tree, it is used directly.
Otherwise the outline is inferred from text layout: fragments are
validity-filtered, repeated headers and footers are dropped, and the
surviving font sizes rank the heading levels.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.outliner/config.yaml)",
	)
	rootCmd.Flags().StringVarP(
		&outputPath, "output", "o", "", "output JSON path (default: <input>_outline.json)",
	)
	rootCmd.Flags().BoolVarP(
		&debug, "debug", "d", false, "log rejected fragments and confirmed boilerplate",
	)
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(debug)
	input := args[0]

	config, err := loadConfig(cfgFile)
	if err != nil {
		logger.Error("config load failed", "error", err)
		return err
	}
	config.Debug = debug

	result, report, err := outliner.Open(input).WithConfig(config).Outline()
	if err != nil {
		logger.Error("outline inference failed", "input", input, "error", err)
		return err
	}

	if debug {
		logReport(logger, report)
	}

	output := outputPath
	if output == "" {
		base := filepath.Base(input)
		output = strings.TrimSuffix(base, filepath.Ext(base)) + "_outline.json"
	}
	if err := export.WriteOutlineFile(output, result); err != nil {
		logger.Error("write failed", "output", output, "error", err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Title: %s\n", result.Title)
	for _, entry := range result.Entries {
		fmt.Fprintf(out, "%s: %s (Page %d)\n", entry.Level, entry.Text, entry.Page)
	}

	logger.Info("outline written",
		"title", result.Title,
		"entries", len(result.Entries),
		"builtin", report.UsedBuiltinOutline,
		"output", output,
	)
	return nil
}

// newLogger builds the CLI logger, verbose when debug is on
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// logReport dumps the pipeline diagnostics at debug level
func logReport(logger *slog.Logger, report *outline.Report) {
	logger.Debug("fragment filtering",
		"total", report.TotalFragments,
		"accepted", report.AcceptedFragments,
		"rejected", len(report.Rejected),
	)
	for _, rej := range report.Rejected {
		logger.Debug("rejected fragment",
			"page", rej.Fragment.Page,
			"text", preview(rej.Fragment.Text),
			"reason", rej.Reason,
		)
	}
	for _, h := range report.ConfirmedHeaders {
		logger.Debug("confirmed header", "text", h)
	}
	for _, f := range report.ConfirmedFooters {
		logger.Debug("confirmed footer", "text", f)
	}
}

// preview truncates long fragment text for log lines
func preview(s string) string {
	const max = 60
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return fmt.Sprintf("%s...", string(runes[:max]))
}
