package model

// User roles as the backend reports them.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleCrew     Role = "crew"
	RoleMechanic Role = "mechanic"
)

type User struct {
	ID        string `json:"user_id"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	RelatedID string `json:"related_id"`
	Email     string `json:"email"`
}

type Customer struct {
	ID          string `json:"customer_id"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	LeadPilotID string `json:"lead_pilot_id,omitempty"`
}

type Passenger struct {
	ID             string `json:"passenger_id"`
	Name           string `json:"name"`
	PassportNumber string `json:"passport_number"`
	Nationality    string `json:"nationality"`
	PassportExpiry string `json:"passport_expiry"`
	Contact        string `json:"contact"`
	CustomerID     string `json:"customer_id"`
}

// CrewTypePilot is the crew_type value that satisfies the
// pilot-on-crew scheduling rule. The comparison is exact.
const CrewTypePilot = "Pilot"

type CrewMember struct {
	ID             string `json:"crew_id"`
	Name           string `json:"name"`
	CrewType       string `json:"crew_type"`
	PassportNumber string `json:"passport_number"`
	Nationality    string `json:"nationality"`
	PassportExpiry string `json:"passport_expiry"`
	Contact        string `json:"contact"`
	LicenseNumber  string `json:"license_number,omitempty"`
}

// IsPilot reports whether this crew member can act as the required pilot.
func (c CrewMember) IsPilot() bool {
	return c.CrewType == CrewTypePilot
}

type JetStatus string

const (
	JetAvailable   JetStatus = "Available"
	JetInFlight    JetStatus = "In Flight"
	JetMaintenance JetStatus = "Maintenance"
)

type Jet struct {
	ID          string    `json:"jet_id"`
	Model       string    `json:"model"`
	TailNumber  string    `json:"tail_number"`
	Capacity    int       `json:"capacity"`
	CustomerIDs []string  `json:"customer_ids"`
	Status      JetStatus `json:"status"`
}

type FlightStatus string

const (
	FlightScheduled  FlightStatus = "Scheduled"
	FlightInProgress FlightStatus = "In Progress"
	FlightCompleted  FlightStatus = "Completed"
	FlightCancelled  FlightStatus = "Cancelled"
)

// ApprovalStatus is an independent gate on a flight, distinct from its
// operational status.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

type Flight struct {
	ID             string         `json:"flight_id"`
	JetID          string         `json:"jet_id"`
	Departure      string         `json:"departure"`
	Destination    string         `json:"destination"`
	DepartureTime  string         `json:"departure_time"`
	ArrivalTime    string         `json:"arrival_time"`
	PassengerIDs   []string       `json:"passenger_ids"`
	CrewIDs        []string       `json:"crew_ids"`
	Status         FlightStatus   `json:"status"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	RequestedBy    string         `json:"requested_by"`
	ApprovedBy     string         `json:"approved_by,omitempty"`
	ApprovalDate   string         `json:"approval_date,omitempty"`
}

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Display returns the label the picker UIs show, e.g.
// "SFO - San Francisco International (San Francisco, CA)".
func (a Airport) Display() string {
	return a.Code + " - " + a.Name + " (" + a.City + ", " + a.State + ")"
}

type AirportSearchResponse struct {
	Results []Airport `json:"results"`
}

type DurationEstimate struct {
	Departure    string `json:"departure"`
	Destination  string `json:"destination"`
	Hours        int    `json:"duration_hours"`
	Minutes      int    `json:"duration_minutes"`
	TotalMinutes int    `json:"duration_total_minutes"`
	Text         string `json:"duration_text"`
}

type DashboardStats struct {
	TotalPassengers int `json:"total_passengers"`
	TotalCrew       int `json:"total_crew"`
	TotalJets       int `json:"total_jets"`
	TotalFlights    int `json:"total_flights"`
	ActiveFlights   int `json:"active_flights"`
	AvailableJets   int `json:"available_jets"`
}

// ScheduleRequest is the JSON body of POST /api/flights/schedule.
type ScheduleRequest struct {
	JetID         string   `json:"jet_id"`
	Departure     string   `json:"departure"`
	Destination   string   `json:"destination"`
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	PassengerIDs  []string `json:"passenger_ids"`
	CrewIDs       []string `json:"crew_ids"`
}

// AddPassengerRequest is the JSON body of POST /api/passengers/add.
type AddPassengerRequest struct {
	Name           string `json:"name"`
	PassportNumber string `json:"passport_number"`
	Nationality    string `json:"nationality"`
	PassportExpiry string `json:"passport_expiry"`
	Contact        string `json:"contact"`
}
