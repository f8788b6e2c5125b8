// Package supplier provides the Supplier aggregate: a vendor account that owns
// products and must be approved by staff before it can sell.
package supplier
