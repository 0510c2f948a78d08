package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/partsense/partsense/internal/analytics"
	"github.com/partsense/partsense/internal/cli"
	"github.com/partsense/partsense/internal/common"
	"github.com/partsense/partsense/internal/engine"
	"github.com/partsense/partsense/internal/knowledge"
	"github.com/partsense/partsense/internal/model"
	"github.com/partsense/partsense/internal/service"
	"github.com/partsense/partsense/internal/storage"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [query...]",
		Short: "Classify one shopping query",
		Long: `Classify a free-text shopping query against the catalog.

The result carries a confidence level (HIGH, MEDIUM, LOW, NO_MATCH), a reason
code and the closest catalog items. NO_MATCH results are recorded as lost
demand; MEDIUM and LOW results emit analytics events.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().String("vehicle", "", "restrict matches to one vehicle type (osobowy, dostawczy, motocykl)")
	cmd.Flags().Bool("json", false, "print the full analysis as JSON")
	cmd.Flags().Bool("no-record", false, "do not record lost demand or emit events")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	vehicle, _ := cmd.Flags().GetString("vehicle")
	asJSON, _ := cmd.Flags().GetBool("json")
	noRecord, _ := cmd.Flags().GetBool("no-record")
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		return common.NewUserError("Give me a query to classify", common.ErrEmptyQuery)
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

	kb := knowledge.NewStore()
	eng := engine.New(kb, items, slog.Default())
	analysis := eng.Classify(query, vehicle)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(analysis); err != nil {
			return fmt.Errorf("failed to encode analysis: %w", err)
		}
	} else {
		fmt.Print(cli.RenderAnalysis(analysis))
	}

	if noRecord {
		return nil
	}
	return recordOutcome(ctx, store, kb, analysis, vehicle)
}

// ensureCatalog rejects classification against an empty catalog with a hint
// the user can act on.
func ensureCatalog(items []model.CatalogItem) error {
	if len(items) == 0 {
		return common.NewUserError(
			"Catalog is empty; run 'partsense catalog seed' first",
			common.ErrEmptyCatalog)
	}
	return nil
}

// recordOutcome persists lost demand and publishes the analytics event for
// one classification. Storage writes retry on transient failures.
func recordOutcome(ctx context.Context, store *storage.SQLiteStorage, kb *knowledge.Store, analysis model.QueryAnalysis, vehicle string) error {
	intent := engine.ExtractIntent(kb, analysis.Tokens)
	retry := service.RetryOptions{MaxAttempts: 3}

	if analysis.Confidence == model.ConfidenceNoMatch {
		record := model.DemandRecord{
			Query:          analysis.Query,
			Intent:         intent,
			Vehicle:        vehicle,
			Suggestion:     analysis.Suggestion,
			TokenValidity:  analysis.TokenValidity,
			HasLuxuryBrand: analysis.HasLuxuryBrand,
		}
		err := common.WithRetry(ctx, func() error {
			return store.RecordDemand(ctx, record)
		}, retry)
		if err != nil {
			return fmt.Errorf("failed to record lost demand: %w", err)
		}
	}

	event, ok := analytics.BuildEvent(analysis, intent)
	if !ok {
		return nil
	}

	sink := analytics.NewFanOut(
		analytics.NewLogSink(slog.Default()),
		analytics.NewJournalSink(store),
	)
	err := common.WithRetry(ctx, func() error {
		return sink.Publish(ctx, event)
	}, retry)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}
