package sparam

import (
	"errors"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	tests := map[string]Quantity{
		"re":        QuantityRe,
		"sRe":       QuantityRe,
		"im":        QuantityIm,
		"sIm":       QuantityIm,
		"mag":       QuantityMag,
		"sMag":      QuantityMag,
		"db":        QuantityDB,
		"sDb":       QuantityDB,
		"DB":        QuantityDB,
		"angle":     QuantityAngle,
		"sAngle":    QuantityAngle,
		"deg":       QuantityDeg,
		" sDeg ":    QuantityDeg,
		"unwrapped": QuantityUnwrapped,
		"delay":     QuantityGroupDelay,
	}
	for key, want := range tests {
		got, err := ParseQuantity(key)
		if err != nil {
			t.Fatalf("ParseQuantity(%q) error: %v", key, err)
		}
		if got != want {
			t.Fatalf("ParseQuantity(%q)=%v want=%v", key, got, want)
		}
	}
}

func TestParseQuantityUnknown(t *testing.T) {
	for _, key := range []string{"", "s", "phase", "sVSWR", "freq"} {
		if _, err := ParseQuantity(key); !errors.Is(err, ErrUnknownQuantity) {
			t.Fatalf("ParseQuantity(%q) err=%v want ErrUnknownQuantity", key, err)
		}
	}
}

func TestQuantityStringRoundTrip(t *testing.T) {
	for _, q := range Quantities() {
		got, err := ParseQuantity(q.String())
		if err != nil || got != q {
			t.Fatalf("ParseQuantity(%q)=%v,%v want=%v", q.String(), got, err, q)
		}
		if q.Label() == "" {
			t.Fatalf("%v has empty label", q)
		}
	}
	if Quantity(0).Valid() || Quantity(99).Valid() {
		t.Fatal("out-of-range quantities must be invalid")
	}
	if Quantity(99).String() != "Quantity(99)" {
		t.Fatalf("String()=%q", Quantity(99).String())
	}
}
