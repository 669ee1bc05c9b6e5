package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront/internal/pkg/errs"
)

// orderNumberPrefix is the fixed first segment of every order number.
const orderNumberPrefix = "ORD"

// OrderNumber is the unique, sortable, human-readable order identifier.
// Its string form is "ORD-YYYYMMDD-NNNN" where YYYYMMDD is the calendar day
// (UTC) the order was created and NNNN the daily sequence number, zero-padded
// to 4 digits. Sequences past 9999 grow the suffix naturally ("ORD-20240615-10000").
//
// OrderNumber is a value object; the zero value is invalid and must be
// constructed through NewOrderNumber or ParseOrderNumber.
type OrderNumber struct {
	day      time.Time
	sequence int
}

// NewOrderNumber creates an order number from a calendar day and a daily
// sequence number. The day is normalized to midnight UTC; the sequence must
// be at least 1.
func NewOrderNumber(day time.Time, sequence int) (OrderNumber, error) {
	if day.IsZero() {
		return OrderNumber{}, errs.NewValueIsRequiredError("order number day")
	}
	if sequence < 1 {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number sequence is invalid",
			fmt.Errorf("%d is not greater than 0", sequence),
		)
	}

	utc := day.UTC()
	return OrderNumber{
		day:      time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC),
		sequence: sequence,
	}, nil
}

// ParseOrderNumber parses the "ORD-YYYYMMDD-NNNN" string form.
func ParseOrderNumber(s string) (OrderNumber, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] != orderNumberPrefix {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number is invalid",
			fmt.Errorf("%q does not match ORD-YYYYMMDD-NNNN", s),
		)
	}

	day, err := time.ParseInLocation("20060102", parts[1], time.UTC)
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number day is invalid", err)
	}

	sequence, err := strconv.Atoi(parts[2])
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number sequence is invalid", err)
	}

	return NewOrderNumber(day, sequence)
}

// Day returns the calendar day (midnight UTC) encoded in the order number.
func (n OrderNumber) Day() time.Time {
	return n.day
}

// Sequence returns the daily sequence number.
func (n OrderNumber) Sequence() int {
	return n.sequence
}

// String returns the "ORD-YYYYMMDD-NNNN" wire form.
// The sequence is zero-padded to 4 digits and widens beyond that as needed.
func (n OrderNumber) String() string {
	return fmt.Sprintf("%s-%s-%04d", orderNumberPrefix, n.day.Format("20060102"), n.sequence)
}

// IsEqual compares two order numbers by day and sequence.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.day.Equal(other.day) && n.sequence == other.sequence
}

// Validate returns an error for zero-value order numbers.
func (n OrderNumber) Validate() error {
	if n.day.IsZero() || n.sequence < 1 {
		return errs.NewValueIsRequiredError("order number must be created via NewOrderNumber or ParseOrderNumber")
	}
	return nil
}
