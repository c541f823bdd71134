package gto

import (
	"testing"

	"github.com/preflop-tools/gtocoach/poker"
)

func board(t *testing.T, cards ...string) []poker.Card {
	t.Helper()
	out := make([]poker.Card, 0, len(cards))
	for _, s := range cards {
		c, err := poker.ParseCard(s)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", s, err)
		}
		out = append(out, c)
	}
	return out
}

func TestFlopTexture(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards []string
		want  Texture
	}{
		{
			name:  "paired two-tone",
			cards: []string{"2h", "2d", "7h"},
			want: Texture{
				Paired:        true,
				DistinctRanks: 2,
				DistinctSuits: 2,
				Suits:         TwoTone,
				Wetness:       SemiWet,
			},
		},
		{
			name:  "monotone connected",
			cards: []string{"9h", "8h", "7h"},
			want: Texture{
				DistinctRanks: 3,
				DistinctSuits: 1,
				Suits:         Monotone,
				Wetness:       Wet,
			},
		},
		{
			name:  "rainbow disconnected",
			cards: []string{"Kh", "7c", "2d"},
			want: Texture{
				DistinctRanks: 3,
				DistinctSuits: 3,
				Suits:         Rainbow,
				Wetness:       Dry,
			},
		},
		{
			name:  "wheel ace plays low",
			cards: []string{"Ah", "2c", "3d"},
			want: Texture{
				DistinctRanks: 3,
				DistinctSuits: 3,
				Suits:         Rainbow,
				Wetness:       SemiWet,
			},
		},
		{
			name:  "broadway two-tone",
			cards: []string{"Kh", "Qh", "Jd"},
			want: Texture{
				DistinctRanks: 3,
				DistinctSuits: 2,
				Suits:         TwoTone,
				Wetness:       Wet,
			},
		},
		{
			name:  "trips",
			cards: []string{"7h", "7d", "7s"},
			want: Texture{
				Paired:        true,
				DistinctRanks: 1,
				DistinctSuits: 3,
				Suits:         Rainbow,
				Wetness:       Dry,
			},
		},
		{
			name:  "gutshot broadway rainbow",
			cards: []string{"Jh", "Tc", "8d"},
			want: Texture{
				DistinctRanks: 3,
				DistinctSuits: 3,
				Suits:         Rainbow,
				Wetness:       SemiWet,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FlopTexture(board(t, tt.cards...))
			if err != nil {
				t.Fatalf("FlopTexture: %v", err)
			}
			if got != tt.want {
				t.Errorf("FlopTexture(%v) = %+v, want %+v", tt.cards, got, tt.want)
			}
		})
	}
}

func TestFlopTextureErrors(t *testing.T) {
	t.Parallel()
	if _, err := FlopTexture(board(t, "Ah", "Kh")); err == nil {
		t.Error("expected error for 2-card board")
	}
	if _, err := FlopTexture(board(t, "Ah", "Kh", "Qh", "Jh")); err == nil {
		t.Error("expected error for 4-card board")
	}
	if _, err := FlopTexture(board(t, "Ah", "Ah", "Kh")); err == nil {
		t.Error("expected error for duplicate board card")
	}
}

func TestTextureToMap(t *testing.T) {
	t.Parallel()
	tex, err := FlopTexture(board(t, "9h", "8h", "7h"))
	if err != nil {
		t.Fatalf("FlopTexture: %v", err)
	}
	m := tex.ToMap()
	if m["suit_texture"] != "monotone" {
		t.Errorf("suit_texture = %v", m["suit_texture"])
	}
	if m["wetness"] != "wet" {
		t.Errorf("wetness = %v", m["wetness"])
	}
	if m["paired"] != false {
		t.Errorf("paired = %v", m["paired"])
	}
	if m["distinct_ranks"] != 3 {
		t.Errorf("distinct_ranks = %v", m["distinct_ranks"])
	}
}
