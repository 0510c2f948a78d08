// Package model defines the core domain models used throughout the application.
package model

// CatalogItem represents a single part in the catalog snapshot.
// The catalog is loaded once at startup and treated as immutable; the
// classification engine never mutates it.
type CatalogItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Vehicle  string  `json:"vehicle"` // vehicle type tag: osobowy, dostawczy, motocykl, uniwersalny
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

// VehicleUniversal marks parts that fit any vehicle type and therefore pass
// every vehicle filter.
const VehicleUniversal = "uniwersalny"
