package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manajet-client/internal/model"
)

var (
	jet = model.Jet{ID: "J1", Model: "G650", Status: model.JetAvailable}
	sfo = model.Airport{Code: "SFO", Name: "San Francisco International", City: "San Francisco", State: "CA"}
	jfk = model.Airport{Code: "JFK", Name: "John F. Kennedy International", City: "New York", State: "NY"}

	roster = []model.CrewMember{
		{ID: "C1", Name: "Pete", CrewType: "Pilot"},
		{ID: "C2", Name: "Nick", CrewType: "Attendant"},
		{ID: "C3", Name: "Co", CrewType: "Co-Pilot"},
	}

	estimate = &model.DurationEstimate{
		Departure: "SFO", Destination: "JFK",
		Hours: 5, Minutes: 25, TotalMinutes: 325, Text: "5h 25m",
	}
)

func completePlan() *Plan {
	return &Plan{
		Jet:         &jet,
		Departure:   &sfo,
		Destination: &jfk,
		CrewIDs:     []string{"C1", "C2"},
		Roster:      roster,
	}
}

func TestDeriveArrival(t *testing.T) {
	departure := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	arrival := DeriveArrival(departure, 325*time.Minute)
	assert.Equal(t, time.Date(2026, 9, 1, 14, 25, 0, 0, time.UTC), arrival)
}

func TestDeriveDeparture(t *testing.T) {
	arrival := time.Date(2026, 9, 1, 14, 25, 0, 0, time.UTC)
	departure := DeriveDeparture(arrival, 325*time.Minute)
	assert.Equal(t, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), departure)
}

func TestPlan_FixedDepartureDrivesArrival(t *testing.T) {
	p := completePlan()
	p.SetDepartureTime(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	p.SetEstimate(estimate)

	assert.Equal(t, time.Date(2026, 9, 1, 14, 25, 0, 0, time.UTC), p.ArrivalTime)

	// editing the fixed endpoint re-derives the other one
	p.SetDepartureTime(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 9, 1, 15, 25, 0, 0, time.UTC), p.ArrivalTime)
}

func TestPlan_FixedArrivalDrivesDeparture(t *testing.T) {
	p := completePlan()
	p.SetArrivalTime(time.Date(2026, 9, 1, 14, 25, 0, 0, time.UTC))
	p.SetEstimate(estimate)

	assert.Equal(t, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), p.DepartureTime)
}

func TestPlan_EstimateChangeRetriggersDerivation(t *testing.T) {
	p := completePlan()
	p.SetDepartureTime(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	p.SetEstimate(estimate)

	shorter := &model.DurationEstimate{TotalMinutes: 60, Text: "1h 0m"}
	p.SetEstimate(shorter)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), p.ArrivalTime)
}

func TestPlan_RecomputeIsIdempotent(t *testing.T) {
	p := completePlan()
	p.SetDepartureTime(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	p.SetEstimate(estimate)

	first := p.ArrivalTime
	p.Recompute()
	p.Recompute()
	assert.Equal(t, first, p.ArrivalTime)
	assert.Equal(t, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), p.DepartureTime)
}

func TestPlan_CanSchedule(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Plan)
		want   bool
	}{
		{"complete plan", func(p *Plan) {}, true},
		{"missing jet", func(p *Plan) { p.Jet = nil }, false},
		{"missing departure", func(p *Plan) { p.Departure = nil }, false},
		{"missing destination", func(p *Plan) { p.Destination = nil }, false},
		{"empty crew", func(p *Plan) { p.CrewIDs = nil }, false},
		{"crew without pilot", func(p *Plan) { p.CrewIDs = []string{"C2"} }, false},
		{"co-pilot is not a pilot", func(p *Plan) { p.CrewIDs = []string{"C3"} }, false},
		{"pilot alone suffices", func(p *Plan) { p.CrewIDs = []string{"C1"} }, true},
		{"unknown crew id", func(p *Plan) { p.CrewIDs = []string{"C9"} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := completePlan()
			tt.mutate(p)
			assert.Equal(t, tt.want, p.CanSchedule())
		})
	}
}

func TestPlan_BuildRequest(t *testing.T) {
	p := completePlan()
	p.PassengerIDs = []string{"P1"}
	p.SetDepartureTime(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	p.SetEstimate(estimate)

	req, ok := p.BuildRequest()
	require.True(t, ok)
	assert.Equal(t, model.ScheduleRequest{
		JetID:         "J1",
		Departure:     "SFO",
		Destination:   "JFK",
		DepartureTime: "2026-09-01 09:00",
		ArrivalTime:   "2026-09-01 14:25",
		PassengerIDs:  []string{"P1"},
		CrewIDs:       []string{"C1", "C2"},
	}, req)
}

func TestPlan_BuildRequestFallbackArrival(t *testing.T) {
	p := completePlan()
	p.DepartureTime = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	req, ok := p.BuildRequest()
	require.True(t, ok)
	assert.Equal(t, "2026-09-01 10:00", req.ArrivalTime)
}

func TestPlan_BuildRequestRejectsIncompletePlan(t *testing.T) {
	p := completePlan()
	p.Jet = nil

	_, ok := p.BuildRequest()
	assert.False(t, ok)
}
