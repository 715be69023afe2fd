package models

import "fmt"

// TaxiType enumerates the fixed vehicle classes of the fare catalog.
type TaxiType string

const (
	TaxiTypeSedan        TaxiType = "Sedan"
	TaxiTypeSUV          TaxiType = "SUV"
	TaxiTypeHatchback    TaxiType = "Hatchback"
	TaxiTypeLuxury       TaxiType = "Luxury"
	TaxiTypeAutoRickshaw TaxiType = "Auto Rickshaw"
)

// TaxiTypeConfig holds the static fare and fuel constants for one class.
// The catalog is reference data, not user-editable.
type TaxiTypeConfig struct {
	Type              TaxiType `json:"type"`
	MileageKmPerLiter float64  `json:"mileageKmPerLiter"`
	PerKmRate         float64  `json:"perKmRate"`
	BaseFare          float64  `json:"baseFare"`
}

var taxiTypeCatalog = []TaxiTypeConfig{
	{Type: TaxiTypeSedan, MileageKmPerLiter: 15, PerKmRate: 12, BaseFare: 50},
	{Type: TaxiTypeSUV, MileageKmPerLiter: 12, PerKmRate: 15, BaseFare: 70},
	{Type: TaxiTypeHatchback, MileageKmPerLiter: 18, PerKmRate: 10, BaseFare: 40},
	{Type: TaxiTypeLuxury, MileageKmPerLiter: 10, PerKmRate: 25, BaseFare: 100},
	{Type: TaxiTypeAutoRickshaw, MileageKmPerLiter: 25, PerKmRate: 8, BaseFare: 25},
}

// Mileage feeds a division in the fare engine, so a bad catalog edit must
// fail at startup rather than at computation time.
func init() {
	for _, cfg := range taxiTypeCatalog {
		if cfg.MileageKmPerLiter <= 0 {
			panic(fmt.Sprintf("taxi type %q has non-positive mileage", cfg.Type))
		}
	}
}

// TaxiTypes returns the catalog in its fixed display order.
func TaxiTypes() []TaxiTypeConfig {
	out := make([]TaxiTypeConfig, len(taxiTypeCatalog))
	copy(out, taxiTypeCatalog)
	return out
}

// LookupTaxiType resolves a class to its config.
func LookupTaxiType(t TaxiType) (TaxiTypeConfig, bool) {
	for _, cfg := range taxiTypeCatalog {
		if cfg.Type == t {
			return cfg, true
		}
	}
	return TaxiTypeConfig{}, false
}
