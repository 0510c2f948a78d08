package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/partsense/partsense/internal/cli"
	"github.com/partsense/partsense/internal/engine"
	"github.com/partsense/partsense/internal/knowledge"
	"github.com/partsense/partsense/internal/model"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Classify a file of queries and summarize the outcomes",
		Long: `Run every query from a file (one per line, # starts a comment) through
the classifier and print a per-confidence breakdown. Useful for regression
runs over captured search logs.`,
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}

	cmd.Flags().String("vehicle", "", "restrict matches to one vehicle type")
	cmd.Flags().Bool("failures", false, "print every LOW and NO_MATCH query after the summary")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	vehicle, _ := cmd.Flags().GetString("vehicle")
	showFailures, _ := cmd.Flags().GetBool("failures")

	queries, err := readQueries(args[0])
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries found in %s", args[0])
	}

	ctx := cmd.Context()
	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	items, err := store.GetItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if err := ensureCatalog(items); err != nil {
		return err
	}

	eng := engine.New(knowledge.NewStore(), items, slog.Default())

	bar := progressbar.Default(int64(len(queries)), "classifying")
	counts := make(map[model.ConfidenceLevel]int)
	var failures []model.QueryAnalysis

	for _, query := range queries {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		analysis := eng.Classify(query, vehicle)
		counts[analysis.Confidence]++
		if analysis.Confidence == model.ConfidenceLow || analysis.Confidence == model.ConfidenceNoMatch {
			failures = append(failures, analysis)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	fmt.Println()
	fmt.Println(cli.FormatTitle(fmt.Sprintf("Classified %d queries", len(queries))))
	for _, level := range []model.ConfidenceLevel{
		model.ConfidenceHigh, model.ConfidenceMedium, model.ConfidenceLow, model.ConfidenceNoMatch,
	} {
		badge := cli.ConfidenceStyle(level).Render(string(level))
		fmt.Printf("  %-10s %d\n", badge, counts[level])
	}

	if showFailures {
		fmt.Println()
		for _, analysis := range failures {
			fmt.Printf("  %-10s %-20s %s\n", analysis.Confidence, analysis.Suggestion, analysis.Query)
		}
	}

	return nil
}

// readQueries loads queries from a file, one per line. Blank lines and
// comments are skipped.
func readQueries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open query file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read query file: %w", err)
	}
	return queries, nil
}
