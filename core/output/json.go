package output

import (
	"encoding/json"
	"io"

	"ghg-engine/core/types"
)

// jsonFormatter emits indented JSON for machine consumption
type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

func (f *jsonFormatter) RenderInventory(w io.Writer, inventory *types.InventoryResult) error {
	return encode(w, struct {
		*types.InventoryResult
		TotalCO2eKg     string `json:"total_co2e_kg"`
		TotalCO2eTonnes string `json:"total_co2e_tonnes"`
	}{
		InventoryResult: inventory,
		TotalCO2eKg:     inventory.TotalCO2eKg().String(),
		TotalCO2eTonnes: inventory.TotalCO2eTonnes().String(),
	})
}

func (f *jsonFormatter) RenderResults(w io.Writer, results []types.EmissionResult) error {
	return encode(w, struct {
		Results []types.EmissionResult `json:"results"`
	}{Results: results})
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
