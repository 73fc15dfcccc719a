package sparam

import (
	"fmt"
	"strings"
)

// Quantity selects which derived representation is plotted on the Y axis.
type Quantity int

const (
	QuantityRe Quantity = iota + 1
	QuantityIm
	QuantityMag
	QuantityDB
	QuantityAngle
	QuantityDeg
	// QuantityUnwrapped is the unwrapped phase in degrees.
	QuantityUnwrapped
	// QuantityGroupDelay is -dφ/dω in seconds.
	QuantityGroupDelay
)

var quantityNames = [...]string{
	QuantityRe:         "re",
	QuantityIm:         "im",
	QuantityMag:        "mag",
	QuantityDB:         "db",
	QuantityAngle:      "angle",
	QuantityDeg:        "deg",
	QuantityUnwrapped:  "unwrapped",
	QuantityGroupDelay: "delay",
}

// Quantities returns every supported quantity.
func Quantities() []Quantity {
	return []Quantity{
		QuantityRe, QuantityIm, QuantityMag, QuantityDB,
		QuantityAngle, QuantityDeg, QuantityUnwrapped, QuantityGroupDelay,
	}
}

// ParseQuantity resolves a quantity key. Both the short keys ("db", "deg")
// and the component keys used by chart hosts ("sDb", "sDeg") are accepted,
// in any letter case.
func ParseQuantity(key string) (Quantity, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.TrimPrefix(k, "s")
	for q, name := range quantityNames {
		if name != "" && name == k {
			return Quantity(q), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownQuantity, key)
}

// Valid reports whether q is a known quantity.
func (q Quantity) Valid() bool {
	return q >= QuantityRe && q <= QuantityGroupDelay
}

func (q Quantity) String() string {
	if !q.Valid() {
		return fmt.Sprintf("Quantity(%d)", int(q))
	}
	return quantityNames[q]
}

// Label returns an axis caption for q.
func (q Quantity) Label() string {
	switch q {
	case QuantityRe:
		return "Re(S)"
	case QuantityIm:
		return "Im(S)"
	case QuantityMag:
		return "|S|"
	case QuantityDB:
		return "|S| [dB]"
	case QuantityAngle:
		return "∠S [rad]"
	case QuantityDeg:
		return "∠S [°]"
	case QuantityUnwrapped:
		return "∠S unwrapped [°]"
	case QuantityGroupDelay:
		return "Group delay [s]"
	default:
		return q.String()
	}
}
