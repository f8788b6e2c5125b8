// Package delivery provides the Delivery aggregate: the fulfillment record that
// tracks transport, address, amount and status for exactly one order.
//
// The package includes:
//   - Delivery: the aggregate root
//   - Status: the forward-only delivery lifecycle (prep, in_transit, delivered, returned)
//   - Transport: the transport modes and their fixed tariff table
//
// Key business rules:
//   - A new delivery starts in prep
//   - Status changes only move forward; delivered and returned are final
//   - Re-applying the current status is accepted and never overwrites timestamps
//   - Entering in_transit stamps the assignment time once
//   - Entering delivered stamps the delivered and actual times once
//   - Without an explicit amount, the amount is the transport's tariff, or zero when
//     the transport has none
package delivery
