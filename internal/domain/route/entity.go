package route

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
)

var (
	ErrEmptyName   = errors.New("route name must not be empty")
	ErrEmptyAreaID = errors.New("route must belong to an area")
)

// Route is a sales path tied to one area (typically a DIVISION) and exactly
// one trade channel.
type Route struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AreaID    string    `json:"area_id"`
	IsGeneral bool      `json:"is_general"`
	IsModern  bool      `json:"is_modern"`
	IsHoreca  bool      `json:"is_horeca"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRoute creates an active route. Exactly one trade channel must be set.
func NewRoute(name, areaID string, isGeneral, isModern, isHoreca bool) (*Route, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if areaID == "" {
		return nil, ErrEmptyAreaID
	}
	if err := ValidateChannels(isGeneral, isModern, isHoreca); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Route{
		ID:        uuid.New().String(),
		Name:      name,
		AreaID:    areaID,
		IsGeneral: isGeneral,
		IsModern:  isModern,
		IsHoreca:  isHoreca,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateChannels enforces the one-channel-per-route rule
func ValidateChannels(isGeneral, isModern, isHoreca bool) error {
	set := 0
	for _, b := range []bool{isGeneral, isModern, isHoreca} {
		if b {
			set++
		}
	}
	if set != 1 {
		return domainerr.NewValidation("trade_channel", "exactly one of is_general, is_modern, is_horeca must be set")
	}
	return nil
}

// Deactivate soft-deletes the route
func (r *Route) Deactivate() {
	r.IsActive = false
	r.UpdatedAt = time.Now()
}

// Assignment links a route to a user for a day of week with an optional date
// range. At most one active assignment may exist per (route, user) pair.
type Assignment struct {
	ID        string     `json:"id"`
	RouteID   string     `json:"route_id"`
	UserID    string     `json:"user_id"`
	DayOfWeek int        `json:"day_of_week"`
	FromDate  *time.Time `json:"from_date,omitempty"`
	ToDate    *time.Time `json:"to_date,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewAssignment creates an active route assignment
func NewAssignment(routeID, userID string, dayOfWeek int, fromDate, toDate *time.Time) (*Assignment, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, domainerr.NewValidation("day_of_week", "must be between 0 and 6")
	}
	if fromDate != nil && toDate != nil && toDate.Before(*fromDate) {
		return nil, domainerr.NewValidation("to_date", "must not be before from_date")
	}

	now := time.Now()
	return &Assignment{
		ID:        uuid.New().String(),
		RouteID:   routeID,
		UserID:    userID,
		DayOfWeek: dayOfWeek,
		FromDate:  fromDate,
		ToDate:    toDate,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Log is one append-only route visit entry
type Log struct {
	ID         string    `json:"id"`
	RouteID    string    `json:"route_id"`
	MemberID   string    `json:"member_id"`
	RetailerID *string   `json:"retailer_id,omitempty"`
	Remarks    string    `json:"remarks"`
	LoggedAt   time.Time `json:"logged_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewLog creates a route log entry
func NewLog(routeID, memberID string, retailerID *string, remarks string, loggedAt time.Time) *Log {
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}
	return &Log{
		ID:         uuid.New().String(),
		RouteID:    routeID,
		MemberID:   memberID,
		RetailerID: retailerID,
		Remarks:    remarks,
		LoggedAt:   loggedAt,
		CreatedAt:  time.Now(),
	}
}
