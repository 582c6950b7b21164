package transform

import (
	"math"
	"testing"

	"tokencss/common"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name      string
		n         float64
		places    int
		dir       common.RoundDirection
		transpose int
		want      float64
	}{
		{"two places", 3.14159, 2, common.RoundDirectionRound, 0, 3.14},
		{"transpose one place", 3.14159, 2, common.RoundDirectionRound, 1, 31.4},
		{"default places", 1.23456, 0, common.RoundDirectionRound, 0, 1.23},
		{"half goes up", 0.125, 2, common.RoundDirectionRound, 0, 0.13},
		{"negative half goes up", -0.125, 2, common.RoundDirectionRound, 0, -0.12},
		{"integer", 18, 2, common.RoundDirectionRound, 1, 180},
		{"floor is rounded", 1.119, 2, common.RoundDirectionFloor, 0, 1.12},
		{"ceil is rounded", 1.111, 2, common.RoundDirectionCeil, 0, 1.11},
		{"transpose all places", 0.5, 1, common.RoundDirectionRound, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RoundTo(tt.n, tt.places, tt.dir, tt.transpose)
			if !ok {
				t.Fatalf("RoundTo(%v) failed", tt.n)
			}
			if got != tt.want {
				t.Errorf("RoundTo(%v, %d, %s, %d) = %v, want %v", tt.n, tt.places, tt.dir, tt.transpose, got, tt.want)
			}
		})
	}
}

func TestRoundTo_Failure(t *testing.T) {
	for _, n := range []float64{0, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if v, ok := RoundTo(n, 2, common.RoundDirectionRound, 0); ok {
			t.Errorf("RoundTo(%v) = %v, expected failure", n, v)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1.5, "1.5"},
		{24, "24"},
		{0.875, "0.875"},
		{-0.5, "-0.5"},
		{1e21, "1000000000000000000000"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
