package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"partial overlap", at(0), at(2), at(1), at(3), true},
		{"identical intervals", at(0), at(2), at(0), at(2), true},
		{"equal starts different ends", at(0), at(2), at(0), at(1), true},
		{"contained interval", at(0), at(4), at(1), at(2), true},
		{"touching end to start", at(0), at(2), at(2), at(4), false},
		{"touching start to end", at(2), at(4), at(0), at(2), false},
		{"disjoint", at(0), at(1), at(3), at(4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// symmetric by construction
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestEvent_Unlimited(t *testing.T) {
	assert.True(t, (&Event{Capacity: CapacityUnlimited}).Unlimited())
	assert.False(t, (&Event{Capacity: 30}).Unlimited())
}

func TestUpdateEventInput_TouchesSchedule(t *testing.T) {
	venue := "Lab 2"
	title := "New Title"
	start := time.Now()

	assert.False(t, UpdateEventInput{Title: &title}.TouchesSchedule())
	assert.True(t, UpdateEventInput{Venue: &venue}.TouchesSchedule())
	assert.True(t, UpdateEventInput{StartTime: &start}.TouchesSchedule())
}
