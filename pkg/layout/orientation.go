package layout

import (
	"strings"

	"github.com/matzehuels/blockgraph/pkg/errors"
)

// Orientation selects the direction in which levels progress.
type Orientation string

const (
	TopToBottom Orientation = "ttb"
	BottomToTop Orientation = "btt"
	LeftToRight Orientation = "ltr"
	RightToLeft Orientation = "rtl"
)

// Orientations lists every supported orientation.
var Orientations = []Orientation{TopToBottom, BottomToTop, LeftToRight, RightToLeft}

// ParseOrientation parses a case-insensitive orientation name. The empty
// string yields TopToBottom.
func ParseOrientation(s string) (Orientation, error) {
	if s == "" {
		return TopToBottom, nil
	}
	o := Orientation(strings.ToLower(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", errors.New(errors.ErrCodeInvalidConfig, "unknown orientation %q (want ttb, btt, ltr or rtl)", s)
	}
	return o, nil
}

// Valid reports whether o is one of the supported orientations.
func (o Orientation) Valid() bool {
	switch o {
	case TopToBottom, BottomToTop, LeftToRight, RightToLeft:
		return true
	}
	return false
}

// IsVertical reports whether levels progress along the y axis.
func (o Orientation) IsVertical() bool { return o == TopToBottom || o == BottomToTop }

// IsReversed reports whether level 0 sits at the far end of the level axis.
func (o Orientation) IsReversed() bool { return o == BottomToTop || o == RightToLeft }

// String implements fmt.Stringer.
func (o Orientation) String() string { return string(o) }
