package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/partsense/partsense/internal/cli"
	"github.com/partsense/partsense/internal/model"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the parts catalog",
	}

	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogSeedCmd())
	cmd.AddCommand(catalogImportCmd())

	return cmd
}

func catalogListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			vehicle, _ := cmd.Flags().GetString("vehicle")

			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var items []model.CatalogItem
			if vehicle != "" {
				items, err = store.GetItemsByVehicle(ctx, vehicle)
			} else {
				items, err = store.GetItems(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			fmt.Print(cli.RenderCatalog(items))
			return nil
		},
	}

	cmd.Flags().String("vehicle", "", "only items for one vehicle type")
	return cmd
}

func catalogSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in catalog into an empty database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			seeded, err := store.Seed(ctx)
			if err != nil {
				return err
			}
			if seeded == 0 {
				fmt.Println(cli.FormatSuccess("Catalog already populated, nothing to do"))
				return nil
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Seeded %d catalog items", seeded)))
			return nil
		},
	}
}

func catalogImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import catalog items from a CSV file",
		Long: `Import catalog items from a CSV file with the header
id,name,category,vehicle,brand,model,price,stock. Existing items with the
same ID are updated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readCatalogCSV(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveItems(ctx, items); err != nil {
				return fmt.Errorf("failed to import items: %w", err)
			}

			slog.Info("Catalog imported", "items", len(items), "file", args[0])
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d catalog items", len(items))))
			return nil
		},
	}
}

// catalogColumns is the required CSV header, in order.
var catalogColumns = []string{"id", "name", "category", "vehicle", "brand", "model", "price", "stock"}

// readCatalogCSV parses a catalog CSV file.
func readCatalogCSV(path string) ([]model.CatalogItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(catalogColumns)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, col := range catalogColumns {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected CSV header: want %v, got %v", catalogColumns, header)
		}
	}

	var items []model.CatalogItem
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		price, err := strconv.ParseFloat(record[6], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price on line %d: %w", line, err)
		}
		stock, err := strconv.Atoi(record[7])
		if err != nil {
			return nil, fmt.Errorf("invalid stock on line %d: %w", line, err)
		}

		items = append(items, model.CatalogItem{
			ID:       record[0],
			Name:     record[1],
			Category: record[2],
			Vehicle:  record[3],
			Brand:    record[4],
			Model:    record[5],
			Price:    price,
			Stock:    stock,
		})
	}
	return items, nil
}
