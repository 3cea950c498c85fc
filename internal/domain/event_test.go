package domain

import (
	"errors"
	"testing"
	"time"
)

func validFields() EventFields {
	return EventFields{
		Title:       "Test Event",
		Date:        "2024-05-01",
		Time:        "18:30",
		Venue:       "Central Park",
		TeamLimit:   10,
		Description: "Five-a-side",
	}
}

func TestEventFields_Validate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(f *EventFields)
		wantErrs int
	}{
		{
			name:     "valid",
			modify:   func(f *EventFields) {},
			wantErrs: 0,
		},
		{
			name:     "missing title",
			modify:   func(f *EventFields) { f.Title = "" },
			wantErrs: 1,
		},
		{
			name:     "bad date",
			modify:   func(f *EventFields) { f.Date = "01.05.2024" },
			wantErrs: 1,
		},
		{
			name:     "bad time",
			modify:   func(f *EventFields) { f.Time = "6pm" },
			wantErrs: 1,
		},
		{
			name:     "zero team limit",
			modify:   func(f *EventFields) { f.TeamLimit = 0 },
			wantErrs: 1,
		},
		{
			name:     "negative team limit",
			modify:   func(f *EventFields) { f.TeamLimit = -3 },
			wantErrs: 1,
		},
		{
			name:     "team limit just above int32",
			modify:   func(f *EventFields) { f.TeamLimit = MaxTeamLimit + 1 },
			wantErrs: 1,
		},
		{
			name:     "team limit wrapping to a small number",
			modify:   func(f *EventFields) { f.TeamLimit = 1<<32 + 5 },
			wantErrs: 1,
		},
		{
			name:     "largest team limit",
			modify:   func(f *EventFields) { f.TeamLimit = MaxTeamLimit },
			wantErrs: 0,
		},
		{
			name:     "everything missing",
			modify:   func(f *EventFields) { *f = EventFields{} },
			wantErrs: 6,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := validFields()
			tt.modify(&f)
			err := f.Validate()
			if tt.wantErrs == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("Validate() error = %v, want ErrValidation", err)
			}
			joined, ok := err.(interface{ Unwrap() []error })
			if !ok {
				t.Fatalf("Validate() error is not joined: %T", err)
			}
			if got := len(joined.Unwrap()); got != tt.wantErrs {
				t.Errorf("Validate() returned %d errors, want %d", got, tt.wantErrs)
			}
		})
	}
}

func TestEventFields_Normalize(t *testing.T) {
	f := EventFields{Title: "  Match ", Venue: "\tField\n", TeamLimit: 4}.Normalize()
	if f.Title != "Match" || f.Venue != "Field" {
		t.Errorf("Normalize() = %+v", f)
	}
}

func TestEvent_StartsAt(t *testing.T) {
	e := Event{Date: "2024-05-01", Time: "18:30"}
	want := time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)
	if got := e.StartsAt(); !got.Equal(want) {
		t.Errorf("StartsAt() = %v, want %v", got, want)
	}
	if got := (Event{Date: "nope"}).StartsAt(); !got.IsZero() {
		t.Errorf("StartsAt() = %v, want zero", got)
	}
}

func TestEvent_Fields(t *testing.T) {
	f := validFields()
	e := Event{
		ID:          7,
		Title:       f.Title,
		Date:        f.Date,
		Time:        f.Time,
		Venue:       f.Venue,
		TeamLimit:   f.TeamLimit,
		Description: f.Description,
	}
	if e.Fields() != f {
		t.Errorf("Fields() = %+v, want %+v", e.Fields(), f)
	}
}
