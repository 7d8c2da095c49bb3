package analysis

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Canonical field names used in rejections and coercion errors, independent
// of the column headers a particular input profile maps them from.
const (
	FieldProduct   = "product"
	FieldQuantity  = "quantity"
	FieldUnitPrice = "unit_price"
)

// RejectReason identifies why a row was excluded from aggregation.
type RejectReason string

const (
	ReasonMissingIdentity     RejectReason = "missing_identity"
	ReasonInvalidField        RejectReason = "invalid_field"
	ReasonNonPositiveQuantity RejectReason = "non_positive_quantity"
	ReasonNonPositivePrice    RejectReason = "non_positive_price"
)

// RawRecord is one data row as read from the input, before coercion.
// Line is the 1-based data row number used in diagnostics.
type RawRecord struct {
	Line      int
	Product   string
	Quantity  string
	UnitPrice string
}

// ValidRecord is a fully validated row ready for aggregation.
type ValidRecord struct {
	Product   string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Revenue   decimal.Decimal
}

// Rejection describes one excluded row. Value holds the raw input text of
// the field that failed, not its coerced form.
type Rejection struct {
	Line   int
	Reason RejectReason
	Field  string
	Value  string
}

// Validator applies the acceptance rules to raw records.
type Validator struct {
	policy Policy
}

// NewValidator constructs a validator for the given coercion policy.
func NewValidator(policy Policy) Validator {
	return Validator{policy: policy}
}

// Validate returns the validated record, or a rejection explaining why the
// row must be skipped. Exactly one of the two is meaningful. A rejection is
// data, not an error: processing always continues with the next row.
func (v Validator) Validate(rec RawRecord) (ValidRecord, *Rejection) {
	product := strings.TrimSpace(rec.Product)
	if product == "" {
		return ValidRecord{}, &Rejection{Line: rec.Line, Reason: ReasonMissingIdentity, Field: FieldProduct, Value: rec.Product}
	}

	quantity, err := CoerceNumeric(v.policy, FieldQuantity, rec.Quantity)
	if err != nil {
		return ValidRecord{}, &Rejection{Line: rec.Line, Reason: ReasonInvalidField, Field: FieldQuantity, Value: rec.Quantity}
	}

	price, err := CoerceNumeric(v.policy, FieldUnitPrice, rec.UnitPrice)
	if err != nil {
		return ValidRecord{}, &Rejection{Line: rec.Line, Reason: ReasonInvalidField, Field: FieldUnitPrice, Value: rec.UnitPrice}
	}

	if quantity.Sign() <= 0 {
		return ValidRecord{}, &Rejection{Line: rec.Line, Reason: ReasonNonPositiveQuantity, Field: FieldQuantity, Value: rec.Quantity}
	}
	if price.Sign() <= 0 {
		return ValidRecord{}, &Rejection{Line: rec.Line, Reason: ReasonNonPositivePrice, Field: FieldUnitPrice, Value: rec.UnitPrice}
	}

	return ValidRecord{
		Product:   product,
		Quantity:  quantity,
		UnitPrice: price,
		Revenue:   quantity.Mul(price),
	}, nil
}
