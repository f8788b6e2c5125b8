package kernel

import "math"

// MaxQuantity is the largest quantity a cart entry, order or order line may
// hold. It matches the INTEGER columns that store quantities.
const MaxQuantity = math.MaxInt32
