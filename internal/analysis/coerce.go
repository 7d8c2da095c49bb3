package analysis

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Policy controls how unparseable numeric text is handled.
type Policy string

const (
	// PolicyStrict turns unparseable values into row rejections.
	PolicyStrict Policy = "strict"
	// PolicyLenient silently coerces unparseable values to zero.
	PolicyLenient Policy = "lenient"
)

// ParsePolicy normalises a policy name from config or flag input.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyStrict:
		return PolicyStrict, nil
	case PolicyLenient:
		return PolicyLenient, nil
	default:
		return "", fmt.Errorf("unknown coercion policy %q", s)
	}
}

// CoerceNumeric parses raw as an exact decimal. Under PolicyLenient any
// unparseable value, empty included, becomes zero and no error is possible.
// Under PolicyStrict the error names the offending field and the original
// text. Callers substitute "0" for cells that are genuinely absent, so a
// strict failure always points at a value that was present in the input.
func CoerceNumeric(policy Policy, field, raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		if policy == PolicyLenient {
			return decimal.Zero, nil
		}
		return decimal.Decimal{}, fmt.Errorf("invalid %s value %q: must be a number", field, raw)
	}
	return value, nil
}
