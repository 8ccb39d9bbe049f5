package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateAgent(t *testing.T) {
	tests := []struct {
		name    string
		agent   *Agent
		wantErr error
	}{
		{name: "valid agent", agent: &Agent{AgentName: "A1"}},
		{name: "nil agent", agent: nil, wantErr: ErrInvalidAgent},
		{name: "blank name", agent: &Agent{AgentName: "  "}, wantErr: ErrEmptyNaturalKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAgent(tt.agent)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAgent() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAgent() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCarrierAndLineOfBusiness(t *testing.T) {
	if err := ValidateCarrier(&Carrier{CompanyName: "Acme"}); err != nil {
		t.Errorf("ValidateCarrier() unexpected error = %v", err)
	}
	if err := ValidateCarrier(&Carrier{}); !errors.Is(err, ErrInvalidCarrier) {
		t.Errorf("ValidateCarrier() error = %v, want %v", err, ErrInvalidCarrier)
	}
	if err := ValidateLineOfBusiness(&LineOfBusiness{CategoryName: "Auto"}); err != nil {
		t.Errorf("ValidateLineOfBusiness() unexpected error = %v", err)
	}
	if err := ValidateLineOfBusiness(&LineOfBusiness{}); !errors.Is(err, ErrEmptyNaturalKey) {
		t.Errorf("ValidateLineOfBusiness() error = %v, want %v", err, ErrEmptyNaturalKey)
	}
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		wantErr error
	}{
		{name: "valid user", user: &User{UserName: "u2", FirstName: "Sam"}},
		{name: "valid user without contact details", user: &User{UserName: "u3", FirstName: "Jo", DOB: ""}},
		{name: "nil user", user: nil, wantErr: ErrInvalidUser},
		{name: "blank user name", user: &User{FirstName: "Sam"}, wantErr: ErrEmptyNaturalKey},
		{name: "blank first name", user: &User{UserName: "u2"}, wantErr: ErrEmptyFirstName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUser(tt.user)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateUser() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateUser() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidUser) {
				t.Errorf("ValidateUser() error = %v, should wrap %v", err, ErrInvalidUser)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "blank", value: "  ", want: time.Time{}},
		{name: "iso date", value: "2024-03-05", want: want},
		{name: "us slash", value: "03/05/2024", want: want},
		{name: "us slash short", value: "3/5/2024", want: want},
		{name: "two digit year", value: "3/5/24", want: want},
		{name: "rfc3339", value: "2024-03-05T00:00:00Z", want: want},
		{name: "garbage", value: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("ParseDate() error = %v, want %v", err, ErrInvalidDate)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate() unexpected error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate() = %v, want %v", got, tt.want)
			}
		})
	}
}
