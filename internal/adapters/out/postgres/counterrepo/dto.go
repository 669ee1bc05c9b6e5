// Package counterrepo persists the per-day order number counters.
// One row per UTC calendar day; the value column holds the last sequence
// handed out for that day.
package counterrepo

// CounterDTO represents one day's order number counter.
type CounterDTO struct {
	Day   string `gorm:"primaryKey;size:8"`
	Value int
}

// TableName specifies the database table name for order counters.
func (CounterDTO) TableName() string {
	return "order_counters"
}
