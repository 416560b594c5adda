package cli

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/fibkm/internal/errors"
)

func TestParseMiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"10", 10, false},
		{"0", 0, false},
		{"34.7", 34.7, false},
		{" 21 ", 21, false},
		{"1e3", 1000, false},
		{"abc", 0, true},
		{"10km", 0, true},
		{"", 0, true},
		{"-1", 0, true},
		{"NaN", 0, true},
		{"inf", 0, true},
		{"1e400", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMiles(tt.raw)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMiles(%q) = %v, %v", tt.raw, got, err)
		}
		var ve apperrors.ValidationError
		if err != nil && (!errors.As(err, &ve) || ve.Value != tt.raw) {
			t.Errorf("ParseMiles(%q) error = %#v", tt.raw, err)
		}
	}
}

func TestParseIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw       string
		want      int
		wantRange bool
		wantValid bool
	}{
		{"1", 1, false, false},
		{"10", 10, false, false},
		{"93", 93, false, false},
		{"94", 0, true, false},
		{"99999999999999999999999", 0, true, false},
		{"0", 0, false, true},
		{"-5", 0, false, true},
		{"-99999999999999999999999", 0, false, true},
		{"1.5", 0, false, true},
		{"ten", 0, false, true},
	}
	for _, tt := range tests {
		got, err := ParseIndex(tt.raw)
		var re apperrors.OutOfRangeError
		var ve apperrors.ValidationError
		if got != tt.want || errors.As(err, &re) != tt.wantRange || errors.As(err, &ve) != tt.wantValid {
			t.Errorf("ParseIndex(%q) = %d, %v", tt.raw, got, err)
		}
	}
}
