// Package order provides the Order aggregate of the marketplace: a customer's
// request for one or more product quantities.
//
// The package includes:
//   - Order: the aggregate root holding the optional client and direct product
//     references, the quantity, the creation time, the status and the lines
//   - Line: one (product, quantity) pair of a multi-product order
//   - Status: the order lifecycle (pending, in_progress, delivered, cancelled)
//
// Key business rules:
//   - Quantities are positive; a product's minimum order quantity is checked by the
//     product aggregate before an order is built
//   - The status of an order is derived from its delivery (see the services package)
//     except for the supplier "mark ready" action
//   - Delivered and cancelled orders can no longer be marked ready
package order
