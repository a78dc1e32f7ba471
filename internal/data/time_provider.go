package data

import "time"

// TimeProvider supplies the clock used to stamp new rows.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider returns the system time in UTC.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now().UTC() }

// FixedTimeProvider always returns the same instant.
type FixedTimeProvider struct {
	fixedTime time.Time
}

// NewFixedTimeProvider creates a FixedTimeProvider pinned to t.
func NewFixedTimeProvider(t time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{fixedTime: t}
}

func (f *FixedTimeProvider) Now() time.Time { return f.fixedTime }
