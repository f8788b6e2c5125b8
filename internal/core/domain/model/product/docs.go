// Package product provides the Product aggregate: an item listed by exactly one
// supplier, with a unique slug, a fixed-point price and a minimum order quantity.
//
// Key business rules:
//   - Every order against a product must request at least MinimumQuantity units
//   - Only active products are visible in the public catalog
//   - A product is owned by exactly one supplier for its whole life
package product
