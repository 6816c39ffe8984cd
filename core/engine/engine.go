// Package engine performs GHG emission calculations. An Engine routes
// activity records to per-scope calculation paths, resolves emission
// factors through the registry's documented fallback chains, and
// returns one or more emission results per activity.
package engine

import (
	"time"

	"go.uber.org/zap"

	"ghg-engine/core/registry"
	"ghg-engine/core/types"
	"ghg-engine/internal/errors"
	"ghg-engine/internal/logging"
)

// Engine calculates emissions for activity records against a factor
// registry under a fixed GWP assessment. It holds no mutable state and
// is safe for concurrent use.
type Engine struct {
	registry   *registry.Registry
	assessment types.GWPAssessment
}

// New creates an engine bound to a registry and GWP assessment
func New(reg *registry.Registry, assessment types.GWPAssessment) *Engine {
	if assessment == "" {
		assessment = types.AR5
	}
	return &Engine{registry: reg, assessment: assessment}
}

// Assessment returns the GWP assessment the engine applies
func (e *Engine) Assessment() types.GWPAssessment {
	return e.assessment
}

// CalculateSingle validates an activity and dispatches it to the
// matching scope calculator. It returns one result for most paths and
// two for grid electricity (location-based and market-based).
func (e *Engine) CalculateSingle(activity *types.ActivityRecord) ([]types.EmissionResult, error) {
	if err := activity.Validate(); err != nil {
		return nil, err
	}

	switch activity.Scope {
	case types.Scope1:
		return e.routeScope1(activity)
	case types.Scope2:
		return e.calcElectricity(activity)
	case types.Scope3:
		return e.calcScope3(activity)
	}
	return nil, errors.Validationf("unknown scope: %s", activity.Scope)
}

// CalculateInventory folds every activity's results into one inventory.
// Activities are independent and processed in input order; any failure
// aborts the whole inventory rather than returning a partial total.
func (e *Engine) CalculateInventory(activities []types.ActivityRecord, name string, year int) (*types.InventoryResult, error) {
	inventory := types.NewInventoryResult(name, year)

	for i := range activities {
		results, err := e.CalculateSingle(&activities[i])
		if err != nil {
			return nil, errors.Wrapf(errors.TypeOf(err), err,
				"activity %d of %d", i+1, len(activities))
		}
		for _, result := range results {
			inventory.Add(result)
		}
	}

	logging.Debug("inventory calculated",
		zap.String("name", name),
		zap.Int("activities", len(activities)),
		zap.String("total_co2e_kg", inventory.TotalCO2eKg().String()))
	return inventory, nil
}

// routeScope1 picks the Scope 1 sub-calculator. When the category is
// not declared it is inferred from the activity's fields: a refrigerant
// means fugitive, a fuel means stationary, anything else is ambiguous
// and rejected.
func (e *Engine) routeScope1(activity *types.ActivityRecord) ([]types.EmissionResult, error) {
	switch activity.Scope1Category {
	case types.StationaryCombustion:
		return e.calcStationary(activity)
	case types.MobileCombustion:
		return e.calcMobile(activity)
	case types.FugitiveEmissions:
		return e.calcFugitive(activity)
	case types.ProcessEmissions:
		return e.calcProcess(activity)
	case "":
		if activity.RefrigerantType != "" {
			return e.calcFugitive(activity)
		}
		if activity.FuelKey() != "" {
			return e.calcStationary(activity)
		}
		return nil, errors.Validationf(
			"cannot determine scope 1 category; set scope1_category to one of %v",
			types.Scope1Categories())
	}
	return nil, errors.Validationf("unknown scope1_category: %s", activity.Scope1Category)
}

// newResult seeds a result with the fields every path shares
func (e *Engine) newResult(activity *types.ActivityRecord) types.EmissionResult {
	return types.EmissionResult{
		ActivityID:       activity.ID,
		ActivityName:     activity.Name,
		Scope:            activity.Scope,
		ActivityQuantity: activity.Quantity,
		ActivityUnit:     activity.Unit,
		DataQuality:      activity.DataQuality,
		Assessment:       e.assessment,
		CalculatedAt:     time.Now().UTC(),
	}
}
