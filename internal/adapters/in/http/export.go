package http

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"marketplace/internal/core/application/usecases/queries"
)

var ordersCSVHeader = []string{
	"id", "order_date", "product", "supplier", "quantity", "unit_price", "total", "status",
}

// writeOrdersCSV writes one header row and one row per record.
func writeOrdersCSV(w io.Writer, records []queries.OrderRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ordersCSVHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.ProductName,
			r.SupplierName,
			strconv.Itoa(r.Quantity),
			r.UnitPrice.String(),
			r.Total.String(),
			r.Status,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
