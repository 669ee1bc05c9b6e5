package counterrepo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// dayKeyLayout matches the date segment of the order number format.
const dayKeyLayout = "20060102"

// GormCounterRepository implements OrderCounterRepository using GORM.
type GormCounterRepository struct {
	db *gorm.DB
}

// NewGormCounterRepository creates a new GORM counter repository.
func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// NextSequence atomically increments and returns the counter for the given
// day. The upsert makes the increment a single statement, so two concurrent
// placements can never draw the same sequence even without row locks taken
// by the caller. Sequences start at 1 and grow without an upper bound.
func (r *GormCounterRepository) NextSequence(ctx context.Context, day time.Time) (int, error) {
	var value int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO order_counters (day, value)
		VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET value = order_counters.value + 1
		RETURNING value
	`, day.UTC().Format(dayKeyLayout)).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
