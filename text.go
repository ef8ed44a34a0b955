package locus

// DefaultTextSize is the font size used when a style leaves Size at zero.
const DefaultTextSize float32 = 14

// HAlign is the horizontal placement of text relative to its anchor point.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical placement of text relative to its anchor point.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Anchor describes where the anchor point sits on the text box. The zero
// value anchors at the top-left corner.
type Anchor struct {
	H HAlign
	V VAlign
}

// Common anchors.
var (
	AnchorTopLeft      = Anchor{H: AlignLeft, V: AlignTop}
	AnchorTopCenter    = Anchor{H: AlignCenter, V: AlignTop}
	AnchorCenter       = Anchor{H: AlignCenter, V: AlignMiddle}
	AnchorBottomCenter = Anchor{H: AlignCenter, V: AlignBottom}
	AnchorLeftMiddle   = Anchor{H: AlignLeft, V: AlignMiddle}
	AnchorRightMiddle  = Anchor{H: AlignRight, V: AlignMiddle}
)

// AnchorOffset returns the offset from the anchor point to the top-left
// corner of a text box with the given measured size.
func AnchorOffset(a Anchor, w, h float32) ScreenPoint {
	var off ScreenPoint
	switch a.H {
	case AlignCenter:
		off.X = -w / 2
	case AlignRight:
		off.X = -w
	}
	switch a.V {
	case AlignMiddle:
		off.Y = -h / 2
	case AlignBottom:
		off.Y = -h
	}
	return off
}

// TextStyle describes how a string is drawn. A zero Size falls back to
// DefaultTextSize and a zero Color inherits the theme text color.
type TextStyle struct {
	Size   float32
	Color  RGBA
	Anchor Anchor
}

// SizeOrDefault returns the style's font size, defaulted when unset.
func (s TextStyle) SizeOrDefault() float32 {
	if s.Size <= 0 {
		return DefaultTextSize
	}
	return s.Size
}
