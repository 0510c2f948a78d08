package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/partsense/partsense/internal/cli"
	"github.com/partsense/partsense/internal/service"
)

func demandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demand",
		Short: "Report lost demand",
		Long: `Show the queries the catalog could not serve, aggregated by intent and
sorted by how often customers asked. This is the purchasing signal the
classifier exists to produce.`,
		RunE: runDemand,
	}

	cmd.Flags().Int("limit", 20, "maximum number of intents to show")
	cmd.Flags().Int("days", 0, "only demand from the last N days (0 = all)")

	return cmd
}

func runDemand(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	days, _ := cmd.Flags().GetInt("days")

	ctx := cmd.Context()
	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	filter := service.DemandFilter{Limit: limit}
	if days > 0 {
		since := time.Now().AddDate(0, 0, -days)
		filter.Since = &since
	}

	summaries, err := store.TopDemand(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to load demand report: %w", err)
	}

	fmt.Print(cli.RenderDemandSummaries(summaries))
	return nil
}
