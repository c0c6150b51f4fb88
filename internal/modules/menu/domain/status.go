package domain

import (
	"strings"
	"time"
)

// StoreStatus is the store-wide open state chosen by staff.
type StoreStatus string

const (
	StatusOpen   StoreStatus = "open"
	StatusClosed StoreStatus = "closed"
	StatusAuto   StoreStatus = "auto"
)

var allowedStatuses = map[string]StoreStatus{
	string(StatusOpen):   StatusOpen,
	string(StatusClosed): StatusClosed,
	string(StatusAuto):   StatusAuto,
}

// NormalizeStoreStatus returns the canonical status and whether the input was recognised.
func NormalizeStoreStatus(raw string) (StoreStatus, bool) {
	status, ok := allowedStatuses[strings.ToLower(strings.TrimSpace(raw))]
	return status, ok
}

// IsOpen evaluates the configured status at the given local time.
func (c RestaurantConfig) IsOpen(now time.Time) bool {
	return EvaluateOpen(c.Status, c.AutoHours, now)
}

// EvaluateOpen applies the status rules:
//   - open and closed are absolute;
//   - auto compares the current HH:MM against the window, both ends inclusive;
//   - an open time later than the close time describes a window that crosses midnight;
//   - unparsable hours under auto evaluate to closed.
func EvaluateOpen(status StoreStatus, hours AutoHours, now time.Time) bool {
	switch status {
	case StatusOpen:
		return true
	case StatusClosed:
		return false
	case StatusAuto:
	default:
		return false
	}

	openAt, okOpen := parseClock(hours.Open)
	closeAt, okClose := parseClock(hours.Close)
	if !okOpen || !okClose {
		return false
	}
	current := now.Hour()*60 + now.Minute()
	if openAt <= closeAt {
		return current >= openAt && current <= closeAt
	}
	return current >= openAt || current <= closeAt
}

func parseClock(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	parsed, err := time.Parse("15:04", raw)
	if err != nil {
		return 0, false
	}
	return parsed.Hour()*60 + parsed.Minute(), true
}
