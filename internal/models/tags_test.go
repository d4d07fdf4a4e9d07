package models

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "", want: DefaultColor},
		{in: "Blue", want: ColorBlue},
		{in: " teal ", want: ColorTeal},
		{in: "magenta", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorOrDefault(t *testing.T) {
	if got := Color("GREEN").OrDefault(); got != ColorGreen {
		t.Errorf("OrDefault() = %q, want green", got)
	}
	if got := Color("sparkly").OrDefault(); got != DefaultColor {
		t.Errorf("OrDefault() = %q, want %q", got, DefaultColor)
	}
}

func TestIconOrDefault(t *testing.T) {
	if got := Icon("").OrDefault(); got != "heart.fill" {
		t.Errorf("OrDefault() = %q, want heart.fill", got)
	}
	if got := Icon("drop.fill").OrDefault(); got != "drop.fill" {
		t.Errorf("OrDefault() = %q, want drop.fill", got)
	}
}
