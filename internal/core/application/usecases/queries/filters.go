// Package queries holds the read side: each query is a guarded value object
// and its handler runs SQL through gorm straight into response structs.
package queries

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar days. A nil bound is open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDateRange reads two optional YYYY-MM-DD values. Empty strings leave the
// bound open.
func ParseDateRange(from, to string) (DateRange, error) {
	var r DateRange
	var err error
	if r.From, err = parseDay("from", from); err != nil {
		return DateRange{}, err
	}
	if r.To, err = parseDay("to", to); err != nil {
		return DateRange{}, err
	}
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return DateRange{}, errs.NewValueIsInvalidErrorWithCause(
			"date range is invalid", fmt.Errorf("%s is before %s", to, from),
		)
	}
	return r, nil
}

func parseDay(name, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil //nolint:nilnil // open bound
	}
	day, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name+" date is invalid", err)
	}
	return &day, nil
}

func parseOrderStatus(s string) (*order.Status, error) {
	if s == "" {
		return nil, nil //nolint:nilnil // no filter
	}
	status, err := order.ParseStatus(s)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func parseDeliveryStatus(s string) (*delivery.Status, error) {
	if s == "" {
		return nil, nil //nolint:nilnil // no filter
	}
	status, err := delivery.ParseStatus(s)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// conditions collects WHERE clauses with their named arguments.
type conditions struct {
	clauses []string
	args    map[string]any
}

func newConditions() *conditions {
	return &conditions{args: make(map[string]any)}
}

func (c *conditions) add(clause string, args map[string]any) {
	c.clauses = append(c.clauses, clause)
	for k, v := range args {
		c.args[k] = v
	}
}

func (c *conditions) set(name string, value any) *conditions {
	c.args[name] = value
	return c
}

// dateRange filters column (a timestamp) on whole days.
func (c *conditions) dateRange(column string, r DateRange) {
	if r.From != nil {
		c.add(column+"::date >= @from_day", map[string]any{"from_day": r.From.Format(dateLayout)})
	}
	if r.To != nil {
		c.add(column+"::date <= @to_day", map[string]any{"to_day": r.To.Format(dateLayout)})
	}
}

// search matches an all-digit term against the id only and any other term
// against the name, case-insensitively.
func (c *conditions) search(idColumn, nameColumn, term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	if isDigits(term) {
		id, err := strconv.ParseInt(term, 10, 64)
		if err != nil {
			c.add("FALSE", nil)
			return
		}
		c.add(idColumn+" = @search_id", map[string]any{"search_id": id})
		return
	}
	c.add(nameColumn+" ILIKE @search", map[string]any{"search": "%" + escapeLike(term) + "%"})
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(c.clauses, " AND ")
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
