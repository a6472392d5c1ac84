package sample

import (
	"errors"
	"testing"
)

func TestParseHash(t *testing.T) {
	tests := []struct {
		hash    string
		want    int
		wantErr bool
	}{
		{"#sample-1", 1, false},
		{"#sample-5", 5, false},
		{"#sample-12", 12, false},
		{"#sample-", 0, true},
		{"#sample-x", 0, true},
		{"", 0, true},
		{"#other-3", 0, true},
		{"#sample-0", 0, true},
		{"#sample--3", 0, true},
		{"#sample-+3", 0, true},
		{"#sample- 3", 0, true},
		{"#sample-99999999999", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.hash, func(t *testing.T) {
			got, err := ParseHash(tt.hash)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknown) {
					t.Errorf("ParseHash(%q) error = %v, want ErrUnknown", tt.hash, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseHash(%q) = %d, %v, want %d", tt.hash, got, err, tt.want)
			}
		})
	}
}
