package schedule

import (
	"time"

	"manajet-client/internal/model"
	"manajet-client/pkg/utils"
)

// FixedEndpoint says which end of the trip the user pinned; the other end
// is derived from the duration estimate.
type FixedEndpoint int

const (
	FixDeparture FixedEndpoint = iota
	FixArrival
)

// fallbackLeg is assumed when a flight is submitted without a duration
// estimate.
const fallbackLeg = time.Hour

// Plan accumulates the user's scheduling selections. It mirrors the
// server's validation, it does not replace it: passenger and crew IDs must
// come from previously fetched rosters.
type Plan struct {
	Jet         *model.Jet
	Departure   *model.Airport
	Destination *model.Airport

	Fixed         FixedEndpoint
	DepartureTime time.Time
	ArrivalTime   time.Time

	PassengerIDs []string
	CrewIDs      []string
	Roster       []model.CrewMember

	Estimate *model.DurationEstimate
}

// HasPilot reports whether the selected crew contains at least one member
// of the roster whose type is Pilot.
func (p *Plan) HasPilot() bool {
	for _, id := range p.CrewIDs {
		for _, member := range p.Roster {
			if member.ID == id && member.IsPilot() {
				return true
			}
		}
	}
	return false
}

// CanSchedule reports whether the plan is complete enough to submit: a
// jet, both airports, and a non-empty crew that includes a pilot.
func (p *Plan) CanSchedule() bool {
	return p.Jet != nil &&
		p.Departure != nil &&
		p.Destination != nil &&
		len(p.CrewIDs) > 0 &&
		p.HasPilot()
}

// SetEstimate records a new duration estimate and recomputes the derived
// endpoint. Call it whenever airports are reselected.
func (p *Plan) SetEstimate(estimate *model.DurationEstimate) {
	p.Estimate = estimate
	p.Recompute()
}

// SetDepartureTime pins the departure endpoint and derives arrival.
func (p *Plan) SetDepartureTime(t time.Time) {
	p.DepartureTime = t
	p.Fixed = FixDeparture
	p.Recompute()
}

// SetArrivalTime pins the arrival endpoint and derives departure.
func (p *Plan) SetArrivalTime(t time.Time) {
	p.ArrivalTime = t
	p.Fixed = FixArrival
	p.Recompute()
}

// Recompute derives the non-fixed endpoint from the fixed one and the
// current estimate. With no estimate it leaves both endpoints alone.
// Recomputing with unchanged inputs yields unchanged outputs.
func (p *Plan) Recompute() {
	if p.Estimate == nil {
		return
	}

	duration := time.Duration(p.Estimate.TotalMinutes) * time.Minute

	switch p.Fixed {
	case FixDeparture:
		p.ArrivalTime = DeriveArrival(p.DepartureTime, duration)
	case FixArrival:
		p.DepartureTime = DeriveDeparture(p.ArrivalTime, duration)
	}
}

// DeriveArrival computes the arrival endpoint from a fixed departure.
func DeriveArrival(departure time.Time, duration time.Duration) time.Time {
	return departure.Add(duration)
}

// DeriveDeparture computes the departure endpoint from a fixed arrival.
func DeriveDeparture(arrival time.Time, duration time.Duration) time.Time {
	return arrival.Add(-duration)
}

// BuildRequest assembles the wire request for a complete plan. Callers
// must check CanSchedule first; an incomplete plan returns the zero
// request and false. A missing arrival falls back to departure plus one
// hour.
func (p *Plan) BuildRequest() (model.ScheduleRequest, bool) {
	if !p.CanSchedule() {
		return model.ScheduleRequest{}, false
	}

	arrival := p.ArrivalTime
	if arrival.IsZero() {
		arrival = p.DepartureTime.Add(fallbackLeg)
	}

	return model.ScheduleRequest{
		JetID:         p.Jet.ID,
		Departure:     p.Departure.Code,
		Destination:   p.Destination.Code,
		DepartureTime: utils.FormatFlightTime(p.DepartureTime),
		ArrivalTime:   utils.FormatFlightTime(arrival),
		PassengerIDs:  p.PassengerIDs,
		CrewIDs:       p.CrewIDs,
	}, true
}
