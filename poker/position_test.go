package poker

import "testing"

func TestPositionsForTableSize(t *testing.T) {
	t.Parallel()
	positions, err := PositionsForTableSize(6)
	if err != nil {
		t.Fatalf("PositionsForTableSize(6): %v", err)
	}
	want := []Position{UTG, MP, CO, BTN, SB, BB}
	if len(positions) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(positions))
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Errorf("position %d = %s, want %s", i, positions[i], want[i])
		}
	}

	for _, n := range []int{2, 5, 9, 10} {
		if _, err := PositionsForTableSize(n); err == nil {
			t.Errorf("expected error for table size %d", n)
		}
	}
}

func TestActingOrder(t *testing.T) {
	t.Parallel()
	// Preflop the blinds act last regardless of input order.
	got := ActingOrder([]Position{BB, BTN, UTG, SB})
	want := []Position{UTG, BTN, SB, BB}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("acting order %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestActsBefore(t *testing.T) {
	t.Parallel()
	if !UTG.ActsBefore(BTN) {
		t.Error("UTG acts before BTN preflop")
	}
	if !BTN.ActsBefore(BB) {
		t.Error("BTN acts before the blinds preflop")
	}
	if BB.ActsBefore(UTG) {
		t.Error("BB acts last preflop")
	}
	if UnknownPosition.ActsBefore(BTN) {
		t.Error("unknown position has no acting order")
	}
}

func TestDistanceFromButton(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pos  Position
		want int
	}{
		{BTN, 0},
		{CO, 1},
		{MP, 2},
		{UTG, 3},
		{BB, 4},
		{SB, 5},
	}
	for _, tt := range tests {
		if got := tt.pos.DistanceFromButton(); got != tt.want {
			t.Errorf("%s.DistanceFromButton() = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestParsePosition(t *testing.T) {
	t.Parallel()
	for _, p := range []Position{UTG, MP, CO, BTN, SB, BB} {
		got, err := ParsePosition(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePosition(%q) = %v, %v", p.String(), got, err)
		}
		got, err = ParsePosition(p.Name())
		if err != nil || got != p {
			t.Errorf("ParsePosition(%q) = %v, %v", p.Name(), got, err)
		}
	}
	if _, err := ParsePosition("HJ"); err == nil {
		t.Error("expected error for unknown position")
	}
}

func TestPositionToMap(t *testing.T) {
	t.Parallel()
	m := BTN.ToMap()
	if m["short_name"] != "BTN" || m["full_name"] != "Button" || m["order"] != 3 {
		t.Errorf("unexpected map: %v", m)
	}
}
