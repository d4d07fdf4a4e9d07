package calendar

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: "", wantErr: false},
		{name: "Local returns local", timezone: "Local", wantErr: false},
		{name: "valid timezone UTC", timezone: "UTC", wantErr: false},
		{name: "valid timezone Asia/Tokyo", timezone: "Asia/Tokyo", wantErr: false},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{in: "monday", want: time.Monday},
		{in: "Mon", want: time.Monday},
		{in: " sunday ", want: time.Sunday},
		{in: "sat", want: time.Saturday},
		{in: "0", want: time.Sunday},
		{in: "3", want: time.Wednesday},
		{in: "7", wantErr: true},
		{in: "someday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWeekday(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekday(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseWeekday(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromSettings(t *testing.T) {
	cal, err := FromSettings("UTC", "")
	if err != nil {
		t.Fatalf("FromSettings() error = %v", err)
	}
	if cal.WeekStart() != time.Monday {
		t.Errorf("default week start = %v, want Monday", cal.WeekStart())
	}
	if cal.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", cal.Location())
	}

	if _, err := FromSettings("Nowhere/City", "monday"); err == nil {
		t.Error("expected error for invalid timezone")
	}
	if _, err := FromSettings("UTC", "funday"); err == nil {
		t.Error("expected error for invalid week start")
	}
}

func TestParseDay(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("timezone not available: %v", err)
	}
	cal := New(tokyo, time.Monday)

	got, err := cal.ParseDay("2024-07-04")
	if err != nil {
		t.Fatalf("ParseDay() error = %v", err)
	}
	if got.Location() != tokyo || got.Day() != 4 || got.Hour() != 0 {
		t.Errorf("ParseDay() = %v, want midnight 2024-07-04 in Tokyo", got)
	}

	if _, err := cal.ParseDay("07/04/2024"); err == nil {
		t.Error("expected error for malformed date")
	}
}
