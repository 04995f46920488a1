// Package model defines the core domain types shared across MonMan.
package model

// Money is an amount of Indonesian Rupiah in minor units (cents, the
// Rupiah amount times 100). Every monetary value in the system is stored
// and passed as Money; floating-point Rupiah values never cross a
// package boundary. Sign indicates direction only in raw transaction
// feeds; budget allocations and spend totals are always non-negative.
type Money int64

// Abs returns the magnitude of the amount.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// WholeRupiah converts cents to whole Rupiah, rounding half away from
// zero. Amounts are whole-Rupiah multiples of 100 in normal use; this
// keeps the conversion total for the ones that are not.
func (m Money) WholeRupiah() int64 {
	abs := int64(m.Abs())
	whole := (abs + 50) / 100
	if m < 0 {
		return -whole
	}
	return whole
}
