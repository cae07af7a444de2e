package system

import "testing"

func TestMask(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"normal key", "AIzaSyExample1234", "****1234"},
		{"short key", "abc", "****"},
		{"exactly four", "abcd", "****"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mask(tt.key); got != tt.want {
				t.Errorf("mask(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
