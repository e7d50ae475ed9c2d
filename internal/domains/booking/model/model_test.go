package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shareit/internal/domains/booking/model"
	"shareit/shared/failure"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    model.State
		wantErr bool
	}{
		{name: "empty defaults to all", raw: "", want: model.StateAll},
		{name: "all", raw: "ALL", want: model.StateAll},
		{name: "current", raw: "CURRENT", want: model.StateCurrent},
		{name: "past", raw: "PAST", want: model.StatePast},
		{name: "future", raw: "FUTURE", want: model.StateFuture},
		{name: "waiting", raw: "WAITING", want: model.StateWaiting},
		{name: "rejected", raw: "REJECTED", want: model.StateRejected},
		{name: "lowercase is accepted", raw: "current", want: model.StateCurrent},
		{name: "unknown state", raw: "SOMETIME", wantErr: true},
		{name: "approved is not a state", raw: "APPROVED", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseState(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
				assert.Contains(t, err.Error(), "Unknown state: "+tt.raw)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBooking_Matches(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	booking := func(start, end time.Time, status string) model.Booking {
		return model.Booking{Start: start, End: end, Status: status}
	}

	tests := []struct {
		name    string
		booking model.Booking
		state   model.State
		want    bool
	}{
		{
			name:    "running booking is current",
			booking: booking(now.Add(-time.Hour), now.Add(time.Hour), model.StatusApproved),
			state:   model.StateCurrent,
			want:    true,
		},
		{
			name:    "booking starting exactly now is not current",
			booking: booking(now, now.Add(time.Hour), model.StatusApproved),
			state:   model.StateCurrent,
			want:    false,
		},
		{
			name:    "booking ending exactly now is not current",
			booking: booking(now.Add(-time.Hour), now, model.StatusApproved),
			state:   model.StateCurrent,
			want:    false,
		},
		{
			name:    "ended booking is past",
			booking: booking(now.Add(-2*time.Hour), now.Add(-time.Hour), model.StatusApproved),
			state:   model.StatePast,
			want:    true,
		},
		{
			name:    "booking ending exactly now is not past",
			booking: booking(now.Add(-time.Hour), now, model.StatusApproved),
			state:   model.StatePast,
			want:    false,
		},
		{
			name:    "upcoming booking is future",
			booking: booking(now.Add(time.Hour), now.Add(2*time.Hour), model.StatusApproved),
			state:   model.StateFuture,
			want:    true,
		},
		{
			name:    "booking starting exactly now is not future",
			booking: booking(now, now.Add(time.Hour), model.StatusApproved),
			state:   model.StateFuture,
			want:    false,
		},
		{
			name:    "waiting matches by status regardless of time",
			booking: booking(now.Add(-2*time.Hour), now.Add(-time.Hour), model.StatusWaiting),
			state:   model.StateWaiting,
			want:    true,
		},
		{
			name:    "rejected matches by status regardless of time",
			booking: booking(now.Add(time.Hour), now.Add(2*time.Hour), model.StatusRejected),
			state:   model.StateRejected,
			want:    true,
		},
		{
			name:    "approved does not match waiting",
			booking: booking(now.Add(time.Hour), now.Add(2*time.Hour), model.StatusApproved),
			state:   model.StateWaiting,
			want:    false,
		},
		{
			name:    "all matches everything",
			booking: booking(now, now, model.StatusRejected),
			state:   model.StateAll,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.Matches(tt.state, now))
		})
	}
}

func TestBooking_Overlaps(t *testing.T) {
	base := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	booking := model.Booking{
		Start: base.Add(2 * day),
		End:   base.Add(4 * day),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{name: "fully before", start: base, end: base.Add(day), want: false},
		{name: "fully after", start: base.Add(5 * day), end: base.Add(6 * day), want: false},
		{name: "fully inside", start: base.Add(2*day + 12*time.Hour), end: base.Add(3 * day), want: true},
		{name: "fully covering", start: base.Add(day), end: base.Add(5 * day), want: true},
		{name: "overlapping the start", start: base.Add(day), end: base.Add(3 * day), want: true},
		{name: "overlapping the end", start: base.Add(3 * day), end: base.Add(5 * day), want: true},
		{name: "touching the start boundary", start: base, end: base.Add(2 * day), want: true},
		{name: "touching the end boundary", start: base.Add(4 * day), end: base.Add(6 * day), want: true},
		{name: "identical interval", start: base.Add(2 * day), end: base.Add(4 * day), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.start, tt.end))
		})
	}
}

func TestFilterByState(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	past := model.Booking{ID: "past", Start: now.Add(-48 * time.Hour), End: now.Add(-24 * time.Hour), Status: model.StatusApproved}
	current := model.Booking{ID: "current", Start: now.Add(-time.Hour), End: now.Add(time.Hour), Status: model.StatusApproved}
	future := model.Booking{ID: "future", Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour), Status: model.StatusWaiting}
	rejected := model.Booking{ID: "rejected", Start: now.Add(72 * time.Hour), End: now.Add(96 * time.Hour), Status: model.StatusRejected}

	all := []model.Booking{past, current, future, rejected}

	tests := []struct {
		name    string
		state   model.State
		wantIDs []string
	}{
		{name: "all preserves order", state: model.StateAll, wantIDs: []string{"past", "current", "future", "rejected"}},
		{name: "current", state: model.StateCurrent, wantIDs: []string{"current"}},
		{name: "past", state: model.StatePast, wantIDs: []string{"past"}},
		{name: "future", state: model.StateFuture, wantIDs: []string{"future", "rejected"}},
		{name: "waiting", state: model.StateWaiting, wantIDs: []string{"future"}},
		{name: "rejected", state: model.StateRejected, wantIDs: []string{"rejected"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.FilterByState(all, tt.state, now)

			gotIDs := make([]string, len(got))
			for i, booking := range got {
				gotIDs[i] = booking.ID
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}

	t.Run("no match yields empty slice", func(t *testing.T) {
		got := model.FilterByState([]model.Booking{future}, model.StatePast, now)

		assert.Empty(t, got)
	})
}
