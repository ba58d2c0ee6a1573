package table

import (
	"fmt"
	"strings"
)

// Strategy selects how a Table resolves collisions
type Strategy int

const (
	// LinearProbe walks forward one slot at a time from the home bucket
	LinearProbe Strategy = iota
	// QuadraticProbe visits home+1, home+4, home+9, ... from the home bucket
	QuadraticProbe
	// Chaining appends colliding entries to a per-bucket chain
	Chaining
)

func (s Strategy) String() string {
	switch s {
	case LinearProbe:
		return "linear"
	case QuadraticProbe:
		return "quadratic"
	case Chaining:
		return "chaining"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// OpenAddressing reports whether the strategy stores entries directly in slots
func (s Strategy) OpenAddressing() bool {
	return s == LinearProbe || s == QuadraticProbe
}

// ParseStrategy accepts a strategy name or its menu number (1, 2 or 3).
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "1":
		return LinearProbe, nil
	case "quadratic", "2":
		return QuadraticProbe, nil
	case "chaining", "chained", "3":
		return Chaining, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
