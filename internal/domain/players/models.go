package players

import (
	"slices"
	"strings"
)

// Position identifies one of the five basketball positions.
type Position string

const (
	PointGuard    Position = "point guard"
	ShootingGuard Position = "shooting guard"
	SmallForward  Position = "small forward"
	PowerForward  Position = "power forward"
	Center        Position = "center"
)

var positions = []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}

// Positions returns every position in declaration order.
func Positions() []Position {
	return slices.Clone(positions)
}

// PositionValues returns the wire values of every position, suitable for schema enums.
func PositionValues() []string {
	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = string(p)
	}
	return out
}

// ParsePosition resolves a wire value. Case, surrounding space and underscores
// ("point_guard") are tolerated.
func ParsePosition(raw string) (Position, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "_", " ")
	p := Position(normalized)
	if !p.Valid() {
		return "", false
	}
	return p, true
}

// Valid reports whether p is a member of the enumeration.
func (p Position) Valid() bool {
	return slices.Contains(positions, p)
}

func (p Position) String() string {
	return string(p)
}
