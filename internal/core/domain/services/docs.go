// Package services provides domain services for rules that span more than one
// aggregate of the marketplace.
//
// The package includes:
//   - DeliveryWorkflow: applies a delivery status and derives the order status from it
//   - SupplierScope: decides whether an order is within a supplier's reach
package services
