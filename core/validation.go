package core

import (
	"fmt"
	"strings"
	"time"
)

// ValidateAgent validates an Agent according to domain rules.
//
// Validation rules:
//   - AgentName must not be blank
func ValidateAgent(agent *Agent) error {
	if agent == nil {
		return fmt.Errorf("%w: agent is nil", ErrInvalidAgent)
	}
	if isBlank(agent.AgentName) {
		return fmt.Errorf("%w: %w", ErrInvalidAgent, ErrEmptyNaturalKey)
	}
	return nil
}

// ValidateCarrier validates a Carrier according to domain rules.
//
// Validation rules:
//   - CompanyName must not be blank
func ValidateCarrier(carrier *Carrier) error {
	if carrier == nil {
		return fmt.Errorf("%w: carrier is nil", ErrInvalidCarrier)
	}
	if isBlank(carrier.CompanyName) {
		return fmt.Errorf("%w: %w", ErrInvalidCarrier, ErrEmptyNaturalKey)
	}
	return nil
}

// ValidateLineOfBusiness validates a LineOfBusiness according to domain rules.
//
// Validation rules:
//   - CategoryName must not be blank
func ValidateLineOfBusiness(lob *LineOfBusiness) error {
	if lob == nil {
		return fmt.Errorf("%w: line of business is nil", ErrInvalidLineOfBusiness)
	}
	if isBlank(lob.CategoryName) {
		return fmt.Errorf("%w: %w", ErrInvalidLineOfBusiness, ErrEmptyNaturalKey)
	}
	return nil
}

// ValidateUser validates a User according to domain rules.
//
// Validation rules:
//   - UserName must not be blank
//   - FirstName must not be blank
//
// NOT validated (optional contact details):
//   - DOB, Address, Phone, State, Zip, Email, Gender, UserType
func ValidateUser(user *User) error {
	if user == nil {
		return fmt.Errorf("%w: user is nil", ErrInvalidUser)
	}
	if isBlank(user.UserName) {
		return fmt.Errorf("%w: %w", ErrInvalidUser, ErrEmptyNaturalKey)
	}
	if isBlank(user.FirstName) {
		return fmt.Errorf("%w: %w", ErrInvalidUser, ErrEmptyFirstName)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// dateLayouts are tried in order. Spreadsheet exports commonly render dates
// with US ordering and two-digit years.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1/2/06",
	"01-02-06",
	"02-Jan-2006",
	"Jan 2, 2006",
}

// ParseDate parses a date value from a tabular source.
// Blank input yields the zero time and no error.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}
