package activityfile

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"ghg-engine/core/types"
	"ghg-engine/internal/errors"
)

// The HCL dialect:
//
//	inventory {
//	  name = "2025 Corporate Inventory"
//	  year = 2025
//	}
//
//	activity "boiler_gas" {
//	  scope     = 1
//	  category  = "stationary_combustion"
//	  fuel_type = "natural_gas"
//	  quantity  = 12500
//	  unit      = "therm"
//	}
//
// The inventory block is optional. Each activity block's label becomes
// the activity id.

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "inventory"},
		{Type: "activity", LabelNames: []string{"id"}},
	},
}

// ParseHCL decodes an HCL inventory document
func ParseHCL(src []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeValidation, "invalid inventory HCL", diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeValidation, "invalid inventory structure", diags)
	}

	doc := &Document{}
	for _, block := range content.Blocks {
		switch block.Type {
		case "inventory":
			if err := decodeInventory(block, doc); err != nil {
				return nil, err
			}
		case "activity":
			activity, err := decodeActivity(block)
			if err != nil {
				return nil, err
			}
			doc.Activities = append(doc.Activities, *activity)
		}
	}

	if err := validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeInventory(block *hcl.Block, doc *Document) error {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return errors.Wrap(errors.TypeValidation, "invalid inventory block", diags)
	}
	for name, attr := range attrs {
		value, err := evalAttr(attr)
		if err != nil {
			return err
		}
		switch name {
		case "name":
			doc.Name, err = asString(value, attr)
		case "year":
			doc.Year, err = asInt(value, attr)
		default:
			return unknownAttr(attr)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func decodeActivity(block *hcl.Block) (*types.ActivityRecord, error) {
	activity := &types.ActivityRecord{ID: block.Labels[0]}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeValidation, "invalid activity block "+activity.ID, diags)
	}

	for name, attr := range attrs {
		value, err := evalAttr(attr)
		if err != nil {
			return nil, err
		}
		if err := setField(activity, name, value, attr); err != nil {
			return nil, err
		}
	}
	return activity, nil
}

// setField maps one attribute onto the activity record
func setField(a *types.ActivityRecord, name string, value cty.Value, attr *hcl.Attribute) error {
	var err error
	switch name {
	case "name":
		a.Name, err = asString(value, attr)
	case "description":
		a.Description, err = asString(value, attr)
	case "scope":
		var raw string
		if raw, err = asScalarString(value, attr); err == nil {
			a.Scope, err = types.ParseScope(raw)
		}
	case "category", "scope1_category":
		var raw string
		if raw, err = asString(value, attr); err == nil {
			a.Scope1Category = types.Scope1Category(raw)
		}
	case "scope2_method":
		var raw string
		if raw, err = asString(value, attr); err == nil {
			a.Scope2Method = types.Scope2Method(raw)
		}
	case "scope3_category":
		var n int
		if n, err = asInt(value, attr); err == nil {
			a.Scope3Category = types.Scope3Category(n)
		}
	case "quantity":
		a.Quantity, err = asDecimal(value, attr)
	case "unit":
		a.Unit, err = asString(value, attr)
	case "fuel_type":
		var raw string
		if raw, err = asString(value, attr); err == nil {
			a.FuelType = types.FuelType(raw)
		}
	case "custom_fuel":
		a.CustomFuel, err = asString(value, attr)
	case "country":
		a.Country, err = asString(value, attr)
	case "region":
		a.Region, err = asString(value, attr)
	case "grid_subregion":
		a.GridSubregion, err = asString(value, attr)
	case "custom_factor":
		a.CustomFactor, err = asNullDecimal(value, attr)
	case "factor_source":
		var raw string
		if raw, err = asString(value, attr); err == nil {
			a.FactorSource = types.FactorSource(raw)
		}
	case "year":
		a.Year, err = asInt(value, attr)
	case "data_quality":
		var n int
		if n, err = asInt(value, attr); err == nil {
			a.DataQuality = types.DataQualityScore(n)
		}
	case "spend_amount":
		a.SpendAmount, err = asNullDecimal(value, attr)
	case "spend_currency":
		a.SpendCurrency, err = asString(value, attr)
	case "naics_code":
		a.NAICSCode, err = asScalarString(value, attr)
	case "distance":
		a.Distance, err = asNullDecimal(value, attr)
	case "distance_unit":
		a.DistanceUnit, err = asString(value, attr)
	case "weight":
		a.Weight, err = asNullDecimal(value, attr)
	case "weight_unit":
		a.WeightUnit, err = asString(value, attr)
	case "vehicle_type":
		a.VehicleType, err = asString(value, attr)
	case "transport_mode":
		a.TransportMode, err = asString(value, attr)
	case "waste_type":
		a.WasteType, err = asString(value, attr)
	case "disposal_method":
		a.DisposalMethod, err = asString(value, attr)
	case "refrigerant_type":
		a.RefrigerantType, err = asString(value, attr)
	default:
		return unknownAttr(attr)
	}
	return err
}

func evalAttr(attr *hcl.Attribute) (cty.Value, error) {
	value, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, errors.Wrap(errors.TypeValidation, "evaluating "+attr.Name, diags)
	}
	return value, nil
}

func asString(value cty.Value, attr *hcl.Attribute) (string, error) {
	if value.Type() != cty.String {
		return "", attrError(attr, "expects a string")
	}
	return value.AsString(), nil
}

// asScalarString accepts strings and numbers; scope and NAICS codes
// read naturally as bare numbers in HCL.
func asScalarString(value cty.Value, attr *hcl.Attribute) (string, error) {
	switch value.Type() {
	case cty.String:
		return value.AsString(), nil
	case cty.Number:
		return value.AsBigFloat().Text('f', -1), nil
	}
	return "", attrError(attr, "expects a string or number")
}

func asInt(value cty.Value, attr *hcl.Attribute) (int, error) {
	if value.Type() != cty.Number {
		return 0, attrError(attr, "expects a number")
	}
	n, accuracy := value.AsBigFloat().Int64()
	if accuracy != 0 {
		return 0, attrError(attr, "expects a whole number")
	}
	return int(n), nil
}

func asDecimal(value cty.Value, attr *hcl.Attribute) (decimal.Decimal, error) {
	if value.Type() != cty.Number {
		return decimal.Zero, attrError(attr, "expects a number")
	}
	d, err := decimal.NewFromString(value.AsBigFloat().Text('f', -1))
	if err != nil {
		return decimal.Zero, attrError(attr, "is not a valid decimal")
	}
	return d, nil
}

func asNullDecimal(value cty.Value, attr *hcl.Attribute) (decimal.NullDecimal, error) {
	d, err := asDecimal(value, attr)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

func attrError(attr *hcl.Attribute, msg string) *errors.Error {
	return errors.Validationf("%s: attribute %q %s", attr.Range.String(), attr.Name, msg)
}

func unknownAttr(attr *hcl.Attribute) *errors.Error {
	return errors.Validationf("%s: unknown attribute %q", attr.Range.String(), attr.Name)
}
