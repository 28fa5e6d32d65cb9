package core

// Attribute is a set of text attributes.
type Attribute uint16

const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << (iota - 1)
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
)

// Has reports whether every attribute in attr is set.
func (a Attribute) Has(attr Attribute) bool { return attr != AttrNone && a&attr == attr }

// Style is how a cell is drawn.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle uses the terminal's own colors.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// NewStyle returns a style with foreground fg on the default background.
func NewStyle(fg Color) Style {
	return Style{Foreground: fg, Background: ColorDefault}
}

func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// With adds attributes.
func (s Style) With(attr Attribute) Style {
	s.Attributes |= attr
	return s
}

func (s Style) Bold() Style      { return s.With(AttrBold) }
func (s Style) Italic() Style    { return s.With(AttrItalic) }
func (s Style) Underline() Style { return s.With(AttrUnderline) }

// Equals compares colors with Color.Equals and attributes exactly.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Attributes == other.Attributes
}
