package liquid

import (
	"testing"
)

func TestDirectionOffset(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Vec2
	}{
		{DirectionUp, Vec2{0, -3}},
		{DirectionRight, Vec2{3, 0}},
		{DirectionDown, Vec2{0, 3}},
		{DirectionLeft, Vec2{-3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Offset(3); got != tt.want {
				t.Errorf("Offset(3) = %v, want %v", got, tt.want)
			}
			if got := tt.dir.Reverse(3); got != tt.want.Scale(-1) {
				t.Errorf("Reverse(3) = %v, want %v", got, tt.want.Scale(-1))
			}
		})
	}
}

func TestDirectionFrameAngleMatchesOffset(t *testing.T) {
	// The nominal up axis rotated into each frame must agree with Offset.
	for _, d := range []Direction{DirectionUp, DirectionRight, DirectionDown, DirectionLeft} {
		got := Vec2{0, -1}.Rotate(d.frameAngle())
		if !vecApprox(got, d.Offset(1), 1e-12) {
			t.Errorf("%s: rotated axis %v, offset %v", d, got, d.Offset(1))
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"up", DirectionUp, false},
		{"Right", DirectionRight, false},
		{" DOWN ", DirectionDown, false},
		{"left", DirectionLeft, false},
		{"sideways", DirectionUp, true},
		{"", DirectionUp, true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDirectionTextRoundTrip(t *testing.T) {
	for _, d := range []Direction{DirectionUp, DirectionRight, DirectionDown, DirectionLeft} {
		text, err := d.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", d, err)
		}
		var got Direction
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if got != d {
			t.Errorf("round trip %v -> %q -> %v", d, text, got)
		}
	}
	if _, err := Direction(9).MarshalText(); err == nil {
		t.Error("expected error for unknown direction")
	}
	if s := Direction(9).String(); s != "Direction(9)" {
		t.Errorf("String = %q", s)
	}
}
