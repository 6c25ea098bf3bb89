package layout

// Line is a straight segment from (X1, Y1) to (X2, Y2).
type Line struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// ConnectionPoints returns the segment joining from and to for orientation o.
//
//	ttb: bottom centre of from → top centre of to
//	btt: top centre of from    → bottom centre of to
//	ltr: right middle of from  → left middle of to
//	rtl: left middle of from   → right middle of to
func ConnectionPoints(from, to Position, o Orientation) Line {
	switch o {
	case BottomToTop:
		return Line{X1: from.CenterX(), Y1: from.Y, X2: to.CenterX(), Y2: to.Bottom()}
	case LeftToRight:
		return Line{X1: from.Right(), Y1: from.CenterY(), X2: to.X, Y2: to.CenterY()}
	case RightToLeft:
		return Line{X1: from.X, Y1: from.CenterY(), X2: to.Right(), Y2: to.CenterY()}
	default:
		return Line{X1: from.CenterX(), Y1: from.Bottom(), X2: to.CenterX(), Y2: to.Y}
	}
}
