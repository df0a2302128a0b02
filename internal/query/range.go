// Package query turns optional startDate/endDate parameters into a
// well-defined interval predicate over event occurrence times.
package query

import (
	"fmt"
	"time"

	"telemetry/internal/domain"

	"gorm.io/gorm"
)

// Range is a closed interval over happenedAt. A nil bound is absent:
//
//	Start nil, End nil  -> unconstrained
//	Start set, End nil  -> happenedAt >= Start
//	Start nil, End set  -> happenedAt <= End
//	Start set, End set  -> Start <= happenedAt <= End
type Range struct {
	Start *time.Time
	End   *time.Time
}

// ParseRange builds a Range from raw query parameters. Empty strings mean the
// bound is absent; anything else must be RFC 3339.
func ParseRange(startDate, endDate string) (Range, error) {
	var r Range
	if startDate != "" {
		t, err := time.Parse(time.RFC3339, startDate)
		if err != nil {
			return Range{}, fmt.Errorf("%w: invalid startDate %q", domain.ErrValidation, startDate)
		}
		r.Start = &t
	}
	if endDate != "" {
		t, err := time.Parse(time.RFC3339, endDate)
		if err != nil {
			return Range{}, fmt.Errorf("%w: invalid endDate %q", domain.ErrValidation, endDate)
		}
		r.End = &t
	}
	return r, nil
}

// Contains reports whether t satisfies the interval predicate. Both bounds
// are inclusive.
func (r Range) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// Scope applies the predicate to a gorm query over device_events.
func (r Range) Scope(db *gorm.DB) *gorm.DB {
	if r.Start != nil {
		db = db.Where("happened_at >= ?", *r.Start)
	}
	if r.End != nil {
		db = db.Where("happened_at <= ?", *r.End)
	}
	return db
}
