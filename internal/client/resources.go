package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"manajet-client/internal/model"
)

// searchResultLimit caps airport search responses; the backend expects it
// as an explicit query parameter.
const searchResultLimit = 10

// Flights fetches all flights visible to the current session.
func (c *Client) Flights(ctx context.Context) ([]model.Flight, error) {
	var flights []model.Flight
	if err := c.getJSON(ctx, "/api/flights", &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// Jets fetches the full jet fleet.
func (c *Client) Jets(ctx context.Context) ([]model.Jet, error) {
	var jets []model.Jet
	if err := c.getJSON(ctx, "/api/jets", &jets); err != nil {
		return nil, err
	}
	return jets, nil
}

// AvailableJets fetches the fleet and keeps only jets that can be
// scheduled. Jets in flight or in maintenance are never offered.
func (c *Client) AvailableJets(ctx context.Context) ([]model.Jet, error) {
	jets, err := c.Jets(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]model.Jet, 0, len(jets))
	for _, jet := range jets {
		if jet.Status == model.JetAvailable {
			available = append(available, jet)
		}
	}
	return available, nil
}

// Passengers fetches all passengers.
func (c *Client) Passengers(ctx context.Context) ([]model.Passenger, error) {
	var passengers []model.Passenger
	if err := c.getJSON(ctx, "/api/passengers", &passengers); err != nil {
		return nil, err
	}
	return passengers, nil
}

// AddPassenger creates a passenger and returns the server's copy.
func (c *Client) AddPassenger(ctx context.Context, req model.AddPassengerRequest) (*model.Passenger, error) {
	var passenger model.Passenger
	if err := c.postJSON(ctx, "/api/passengers/add", req, &passenger); err != nil {
		return nil, err
	}
	return &passenger, nil
}

// Crew fetches all crew members.
func (c *Client) Crew(ctx context.Context) ([]model.CrewMember, error) {
	var crew []model.CrewMember
	if err := c.getJSON(ctx, "/api/crew", &crew); err != nil {
		return nil, err
	}
	return crew, nil
}

// ScheduleFlight submits a flight request and returns the new flight ID.
// A 200 response that lacks the flight_id field fails with
// ErrInvalidResponse; the flight may or may not exist server-side.
func (c *Client) ScheduleFlight(ctx context.Context, req model.ScheduleRequest) (string, error) {
	var result struct {
		FlightID string `json:"flight_id"`
	}
	if err := c.postJSON(ctx, "/api/flights/schedule", req, &result); err != nil {
		return "", err
	}

	if result.FlightID == "" {
		return "", fmt.Errorf("%w: schedule response missing flight_id", ErrInvalidResponse)
	}

	c.logger.Info("Scheduled flight %s (%s -> %s)", result.FlightID, req.Departure, req.Destination)

	return result.FlightID, nil
}

// PendingApprovals fetches flights awaiting an approval decision.
func (c *Client) PendingApprovals(ctx context.Context) ([]model.Flight, error) {
	var flights []model.Flight
	if err := c.getJSON(ctx, "/api/approvals/pending", &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// ApproveFlight marks a pending flight approved. Success is status-only;
// the response carries no payload.
func (c *Client) ApproveFlight(ctx context.Context, flightID string) error {
	return c.decideFlight(ctx, flightID, "approve")
}

// RejectFlight marks a pending flight rejected. Success is status-only.
func (c *Client) RejectFlight(ctx context.Context, flightID string) error {
	return c.decideFlight(ctx, flightID, "reject")
}

func (c *Client) decideFlight(ctx context.Context, flightID, decision string) error {
	path := fmt.Sprintf("/flights/%s/%s", url.PathEscape(flightID), decision)

	status, _, err := c.do(ctx, http.MethodPost, path, nil, "")
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		c.logger.Error("Flight %s %s returned status %d", flightID, decision, status)
		if c.metrics != nil {
			c.metrics.IncrementAPIErrors()
		}
		return &APIError{StatusCode: status, Path: path}
	}

	c.logger.Info("Flight %s: %s succeeded", flightID, decision)

	return nil
}

// SearchAirports looks up airports by code or name substring. An empty
// query returns an empty result without touching the network.
func (c *Client) SearchAirports(ctx context.Context, query string) ([]model.Airport, error) {
	if query == "" {
		return nil, nil
	}

	path := fmt.Sprintf("/api/airports/search?q=%s&limit=%d", url.QueryEscape(query), searchResultLimit)

	var response model.AirportSearchResponse
	if err := c.getJSON(ctx, path, &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}

// EstimateDuration asks the backend for the flight time between two
// airport codes.
func (c *Client) EstimateDuration(ctx context.Context, departure, destination string) (*model.DurationEstimate, error) {
	path := fmt.Sprintf("/api/flights/estimate-duration?departure=%s&destination=%s",
		url.QueryEscape(departure), url.QueryEscape(destination))

	var estimate model.DurationEstimate
	if err := c.getJSON(ctx, path, &estimate); err != nil {
		return nil, err
	}
	return &estimate, nil
}

// Stats fetches the dashboard aggregate counts.
func (c *Client) Stats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.getJSON(ctx, "/api/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
