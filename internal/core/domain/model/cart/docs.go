// Package cart provides the session cart: a pre-order mapping from product
// identifier to requested quantity, plus the priced summary shown to the
// customer before checkout.
//
// A Cart holds no product data. Summarize resolves it against the current
// product records and silently drops entries whose product no longer exists.
package cart
