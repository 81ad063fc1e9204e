package liquid

import (
	"fmt"
	"math"
	"strings"
)

// Direction is the axis along which a cascade opens. It is fixed for the
// duration of one open/close cycle.
type Direction uint8

const (
	DirectionUp    Direction = iota // cells open toward the top of the screen
	DirectionRight                  // cells open toward the right
	DirectionDown                   // cells open toward the bottom
	DirectionLeft                   // cells open toward the left
)

var directionNames = [...]string{"up", "right", "down", "left"}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection parses "up", "right", "down" or "left" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	return DirectionUp, fmt.Errorf("unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if int(d) >= len(directionNames) {
		return nil, fmt.Errorf("unknown direction %d", uint8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so directions can be
// written by name in config files.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// valid reports whether d is one of the four named directions.
func (d Direction) valid() bool {
	return int(d) < len(directionNames)
}

// Offset returns the displacement of distance units along d.
func (d Direction) Offset(distance float64) Vec2 {
	switch d {
	case DirectionRight:
		return Vec2{distance, 0}
	case DirectionDown:
		return Vec2{0, distance}
	case DirectionLeft:
		return Vec2{-distance, 0}
	default:
		return Vec2{0, -distance}
	}
}

// Reverse returns the displacement of distance units against d.
func (d Direction) Reverse(distance float64) Vec2 {
	return d.Offset(-distance)
}

// frameAngle is the rotation from the nominal "up" frame into d's frame, in
// radians. Connector angles are written for Up and rotated by this amount.
func (d Direction) frameAngle() float64 {
	switch d {
	case DirectionRight:
		return math.Pi / 2
	case DirectionDown:
		return math.Pi
	case DirectionLeft:
		return 3 * math.Pi / 2
	default:
		return 0
	}
}
