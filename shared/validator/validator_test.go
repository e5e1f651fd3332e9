package validator_test

import (
	"strings"
	"testing"

	"courtside/shared/validator"
)

type bookingPayload struct {
	ResourceID  string `validate:"required" json:"resourceId"`
	BookingDate string `validate:"required,dateonly" json:"bookingDate"`
	StartTime   string `validate:"required,clock" json:"startTime"`
	Duration    int    `validate:"required,gte=30" json:"duration"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingPayload
		expectError bool
	}{
		{
			name: "valid payload",
			data: &bookingPayload{
				ResourceID:  "5f6c8b1e-1b2a-4c3d-9e8f-7a6b5c4d3e2f",
				BookingDate: "2026-09-12",
				StartTime:   "19:30",
				Duration:    60,
			},
			expectError: false,
		},
		{
			name: "missing resource",
			data: &bookingPayload{
				BookingDate: "2026-09-12",
				StartTime:   "19:30",
				Duration:    60,
			},
			expectError: true,
		},
		{
			name: "malformed date",
			data: &bookingPayload{
				ResourceID:  "5f6c8b1e-1b2a-4c3d-9e8f-7a6b5c4d3e2f",
				BookingDate: "12-09-2026",
				StartTime:   "19:30",
				Duration:    60,
			},
			expectError: true,
		},
		{
			name: "malformed start time",
			data: &bookingPayload{
				ResourceID:  "5f6c8b1e-1b2a-4c3d-9e8f-7a6b5c4d3e2f",
				BookingDate: "2026-09-12",
				StartTime:   "25:99",
				Duration:    60,
			},
			expectError: true,
		},
		{
			name: "duration below minimum",
			data: &bookingPayload{
				ResourceID:  "5f6c8b1e-1b2a-4c3d-9e8f-7a6b5c4d3e2f",
				BookingDate: "2026-09-12",
				StartTime:   "19:30",
				Duration:    15,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)
			if tt.expectError && err == nil {
				t.Errorf("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error but got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		body := `{"resourceId":"5f6c8b1e-1b2a-4c3d-9e8f-7a6b5c4d3e2f","bookingDate":"2026-09-12","startTime":"19:30","duration":60}`

		var payload bookingPayload

		err := validator.Validate(strings.NewReader(body), &payload)
		if err != nil {
			t.Errorf("expected no error but got: %v", err)
		}

		if payload.StartTime != "19:30" {
			t.Errorf("expected start time 19:30, got %s", payload.StartTime)
		}
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		body := `{"resourceId":`

		var payload bookingPayload

		err := validator.Validate(strings.NewReader(body), &payload)
		if err == nil {
			t.Error("expected error but got nil")
		}
	})
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("23:00", "clock"); err != nil {
		t.Errorf("expected no error but got: %v", err)
	}

	if err := validator.ValidateVar("23:00:00:00", "clock"); err == nil {
		t.Error("expected error but got nil")
	}
}
