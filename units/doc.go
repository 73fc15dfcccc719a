// Package units converts frequency values between the SI frequency units
// used by network analyzers (Hz through PHz).
//
// Unit tags are the upper-case symbols HZ, KHZ, MHZ, GHZ, THZ and PHZ. Parse
// accepts any letter case, so "kHz" and "GHz" map onto the canonical tags.
package units
