// Package kernel holds the value objects shared by every aggregate of the
// marketplace domain.
//
// The package includes:
//   - UUID: an identifier that must be created through a constructor; used for
//     cart session keys
//   - Money: a non-negative fixed-point amount backed by shopspring/decimal,
//     used for prices, tariffs, subtotals and totals
//   - MaxQuantity: the upper bound shared by every stored quantity
package kernel
