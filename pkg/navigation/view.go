package navigation

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownView = errors.New("unknown view")

// View is the active calendar layout.
type View int

const (
	Month View = iota
	Week
	Day
)

var viewNames = [...]string{
	Month: "month",
	Week:  "week",
	Day:   "day",
}

func (v View) String() string {
	if v < Month || v > Day {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return viewNames[v]
}

func (v View) Valid() bool {
	return v >= Month && v <= Day
}

// ParseView accepts the view names case-insensitively.
func ParseView(name string) (View, error) {
	for v, n := range viewNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return View(v), nil
		}
	}
	return Month, fmt.Errorf("%w: %q", ErrUnknownView, name)
}

func (v View) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownView, int(v))
	}
	return []byte(v.String()), nil
}

func (v *View) UnmarshalText(text []byte) error {
	parsed, err := ParseView(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
