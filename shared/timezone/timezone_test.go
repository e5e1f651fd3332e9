package timezone_test

import (
	"testing"
	"time"

	"courtside/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}
}

func TestTimezoneParse(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2025-03-03")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}

	if parsed.Year() != 2025 || parsed.Month() != time.March || parsed.Day() != 3 {
		t.Errorf("Parse() returned unexpected date: %v", parsed)
	}
}
