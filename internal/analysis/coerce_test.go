package analysis

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCoerceNumericStrict(t *testing.T) {
	got, err := CoerceNumeric(PolicyStrict, FieldQuantity, " 3 ")
	if err != nil {
		t.Fatalf("valid value should parse: %v", err)
	}
	if got.Cmp(decimal.NewFromInt(3)) != 0 {
		t.Fatalf("expected 3, got %s", got)
	}

	_, err = CoerceNumeric(PolicyStrict, FieldUnitPrice, "12.x")
	if err == nil {
		t.Fatal("strict policy should reject unparseable text")
	}
	if !strings.Contains(err.Error(), FieldUnitPrice) || !strings.Contains(err.Error(), "12.x") {
		t.Fatalf("error should name field and raw value: %v", err)
	}
}

func TestCoerceNumericStrictBlank(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		if _, err := CoerceNumeric(PolicyStrict, FieldQuantity, raw); err == nil {
			t.Fatalf("blank value %q should fail under strict policy", raw)
		}
	}
}

func TestCoerceNumericLenient(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "12abc"} {
		got, err := CoerceNumeric(PolicyLenient, FieldQuantity, raw)
		if err != nil {
			t.Fatalf("lenient policy must not fail on %q: %v", raw, err)
		}
		if !got.IsZero() {
			t.Fatalf("lenient policy should coerce %q to zero, got %s", raw, got)
		}
	}

	got, err := CoerceNumeric(PolicyLenient, FieldUnitPrice, "19.99")
	if err != nil {
		t.Fatalf("valid value should parse: %v", err)
	}
	if got.Cmp(decimal.RequireFromString("19.99")) != 0 {
		t.Fatalf("expected 19.99, got %s", got)
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy(" Strict ")
	if err != nil || p != PolicyStrict {
		t.Fatalf("expected strict, got %q err %v", p, err)
	}
	p, err = ParsePolicy("lenient")
	if err != nil || p != PolicyLenient {
		t.Fatalf("expected lenient, got %q err %v", p, err)
	}
	if _, err := ParsePolicy("fuzzy"); err == nil {
		t.Fatal("unknown policy should fail")
	}
}
