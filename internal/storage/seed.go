package storage

import (
	"context"
	"fmt"

	"github.com/partsense/partsense/internal/model"
)

// DefaultCatalog is the built-in parts catalog used by `partsense catalog
// seed` and by development setups that have no import file yet.
func DefaultCatalog() []model.CatalogItem {
	return []model.CatalogItem{
		{ID: "KH001", Name: "Klocki hamulcowe przód Bosch BMW E90 320i", Category: "hamulce", Vehicle: "osobowy", Brand: "Bosch", Model: "0986494104", Price: 189, Stock: 45},
		{ID: "KH002", Name: "Klocki hamulcowe tył ATE Mercedes W204 C200", Category: "hamulce", Vehicle: "osobowy", Brand: "ATE", Model: "13.0460-7218", Price: 156, Stock: 38},
		{ID: "KH003", Name: "Klocki hamulcowe Ferodo Audi A4 B8 2.0 TDI", Category: "hamulce", Vehicle: "osobowy", Brand: "Ferodo", Model: "FDB4050", Price: 245, Stock: 22},
		{ID: "KH004", Name: "Klocki hamulcowe TRW VW Golf VII 1.4 TSI", Category: "hamulce", Vehicle: "osobowy", Brand: "TRW", Model: "GDB1748", Price: 135, Stock: 67},
		{ID: "KH005", Name: "Klocki hamulcowe Brembo Toyota Corolla E12", Category: "hamulce", Vehicle: "osobowy", Brand: "Brembo", Model: "P83052", Price: 156, Stock: 73},
		{ID: "KH006", Name: "Klocki hamulcowe przód Textar Ford Focus MK3", Category: "hamulce", Vehicle: "osobowy", Brand: "Textar", Model: "2456701", Price: 178, Stock: 41},
		{ID: "KH007", Name: "Klocki hamulcowe ceramiczne ATE BMW M3 E92", Category: "hamulce", Vehicle: "osobowy", Brand: "ATE", Model: "13.0470-7241", Price: 845, Stock: 8},
		{ID: "TH001", Name: "Tarcza hamulcowa przednia Brembo BMW E90 320mm", Category: "hamulce", Vehicle: "osobowy", Brand: "Brembo", Model: "09.9772.11", Price: 420, Stock: 18},
		{ID: "TH002", Name: "Tarcza hamulcowa tylna ATE Mercedes W204 300mm", Category: "hamulce", Vehicle: "osobowy", Brand: "ATE", Model: "24.0330-0184", Price: 285, Stock: 25},
		{ID: "TH003", Name: "Tarcza hamulcowa Zimmermann VW Golf VII przód 312mm", Category: "hamulce", Vehicle: "osobowy", Brand: "Zimmermann", Model: "100.3234.20", Price: 198, Stock: 34},
		{ID: "FO001", Name: "Filtr oleju Mann HU719/7x BMW N47 N57 diesel", Category: "filtry", Vehicle: "osobowy", Brand: "Mann", Model: "HU719/7x", Price: 62, Stock: 120},
		{ID: "FO002", Name: "Filtr oleju Mahle OX371D Mercedes OM651 2.2 CDI", Category: "filtry", Vehicle: "osobowy", Brand: "Mahle", Model: "OX371D", Price: 45, Stock: 89},
		{ID: "FO003", Name: "Filtr oleju Bosch F026407022 VW 1.9 2.0 TDI", Category: "filtry", Vehicle: "osobowy", Brand: "Bosch", Model: "F026407022", Price: 38, Stock: 156},
		{ID: "FP001", Name: "Filtr paliwa Bosch F026402836 PSA 1.6 2.0 HDI", Category: "filtry", Vehicle: "osobowy", Brand: "Bosch", Model: "F026402836", Price: 89, Stock: 85},
		{ID: "FA001", Name: "Filtr powietrza K&N 33-2990 sportowy uniwersalny", Category: "filtry", Vehicle: model.VehicleUniversal, Brand: "K&N", Model: "33-2990", Price: 285, Stock: 35},
		{ID: "FA002", Name: "Filtr powietrza Mann C2774/1 BMW E90 E91 E92", Category: "filtry", Vehicle: "osobowy", Brand: "Mann", Model: "C2774/1", Price: 67, Stock: 89},
		{ID: "FK001", Name: "Filtr kabinowy węglowy Mann CUK2939 Audi A4 A6", Category: "filtry", Vehicle: "osobowy", Brand: "Mann", Model: "CUK2939", Price: 95, Stock: 68},
		{ID: "AM001", Name: "Amortyzator przód Bilstein B4 VW Golf VII 1.4 TSI", Category: "zawieszenie", Vehicle: "osobowy", Brand: "Bilstein", Model: "22-266767", Price: 520, Stock: 15},
		{ID: "AM002", Name: "Amortyzator tył KYB Excel-G Ford Focus MK3 1.6", Category: "zawieszenie", Vehicle: "osobowy", Brand: "KYB", Model: "349034", Price: 385, Stock: 24},
		{ID: "AM003", Name: "Amortyzator przód Sachs Opel Astra J 1.7 CDTI", Category: "zawieszenie", Vehicle: "osobowy", Brand: "Sachs", Model: "314896", Price: 425, Stock: 19},
		{ID: "SZ001", Name: "Świeca zapłonowa NGK Laser Iridium ILZKR7B11", Category: "zapłon", Vehicle: "osobowy", Brand: "NGK", Model: "ILZKR7B11", Price: 45, Stock: 280},
		{ID: "SZ002", Name: "Świeca zapłonowa Bosch Platinum Plus FR7DPP33", Category: "zapłon", Vehicle: "osobowy", Brand: "Bosch", Model: "FR7DPP33", Price: 38, Stock: 320},
		{ID: "SZ003", Name: "Świeca żarowa Beru PSG006 Mercedes 2.2 CDI", Category: "zapłon", Vehicle: "osobowy", Brand: "Beru", Model: "PSG006", Price: 78, Stock: 145},
		{ID: "AK001", Name: "Akumulator Varta Blue Dynamic 74Ah 680A E12", Category: "elektryka", Vehicle: "osobowy", Brand: "Varta", Model: "E12", Price: 420, Stock: 38},
		{ID: "AK002", Name: "Akumulator Bosch S4 Silver 60Ah 540A S4005", Category: "elektryka", Vehicle: "osobowy", Brand: "Bosch", Model: "S4005", Price: 350, Stock: 45},
		{ID: "OL001", Name: "Olej silnikowy Castrol Edge 5W30 Titanium FST 5L", Category: "oleje", Vehicle: "osobowy", Brand: "Castrol", Model: "Edge 5W30", Price: 165, Stock: 92},
		{ID: "OL002", Name: "Olej silnikowy Mobil 1 ESP 0W40 syntetyczny 4L", Category: "oleje", Vehicle: "osobowy", Brand: "Mobil", Model: "ESP 0W40", Price: 189, Stock: 78},
		{ID: "OL003", Name: "Olej silnikowy Shell Helix Ultra 5W40 API SN 5L", Category: "oleje", Vehicle: "osobowy", Brand: "Shell", Model: "Helix Ultra", Price: 145, Stock: 110},
		{ID: "MKH001", Name: "Klocki hamulcowe EBC Yamaha R6 2003-2016 przód", Category: "hamulce", Vehicle: "motocykl", Brand: "EBC", Model: "FA252HH", Price: 145, Stock: 32},
		{ID: "MLN001", Name: "Łańcuch napędowy DID 520VX3 Yamaha R6 gold", Category: "napęd", Vehicle: "motocykl", Brand: "DID", Model: "520VX3-114", Price: 345, Stock: 38},
		{ID: "DKH001", Name: "Klocki hamulcowe Textar Mercedes Sprinter 906 przód", Category: "hamulce", Vehicle: "dostawczy", Brand: "Textar", Model: "2430801", Price: 267, Stock: 34},
		{ID: "DFO001", Name: "Filtr oleju Mann W712/94 Sprinter Vito 2.2 CDI", Category: "filtry", Vehicle: "dostawczy", Brand: "Mann", Model: "W712/94", Price: 78, Stock: 89},
	}
}

// Seed loads the default catalog unless the database already has items.
func (s *SQLiteStorage) Seed(ctx context.Context) (int, error) {
	count, err := s.CountItems(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	items := DefaultCatalog()
	if err := s.SaveItems(ctx, items); err != nil {
		return 0, fmt.Errorf("failed to seed catalog: %w", err)
	}
	return len(items), nil
}
