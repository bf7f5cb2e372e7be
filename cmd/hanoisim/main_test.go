package main

import (
	"strconv"
	"testing"

	"github.com/san-kum/hanoisim/internal/hanoi"
	"github.com/spf13/cobra"
)

func TestDiskArg(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"7", 7, false},
		{strconv.Itoa(hanoi.MaxGenerateDisks), hanoi.MaxGenerateDisks, false},
		{strconv.Itoa(hanoi.MaxGenerateDisks + 1), 0, true},
		{"35", 0, true},
		{"63", 0, true},
		{"64", 0, true},
		{"0", 0, true},
		{"-2", 0, true},
		{"seven", 0, true},
	}

	for _, tt := range tests {
		got, err := diskArg(&cobra.Command{}, []string{tt.arg})
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %d", tt.arg, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.arg, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.arg, tt.want, got)
		}
	}
}
