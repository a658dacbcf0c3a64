package screen

// Color is a single cell value, one of the uppercase letters A-Z.
type Color byte

// Background is the colour of every cell of a freshly created or cleared
// grid.
const Background Color = 'O'

// Colors is the number of distinct colours a cell can hold.
const Colors = 'Z' - 'A' + 1

func (c Color) valid() bool {
	return c >= 'A' && c <= 'Z'
}

// Index maps a colour onto its palette index.
func (c Color) Index() uint8 {
	return uint8(c - 'A')
}

func colorAt(index uint8) Color {
	return Color('A' + index)
}

func (c Color) String() string {
	return string(rune(c))
}

// ValidateColor reports whether c can be painted.
func ValidateColor(c Color) error {
	if !c.valid() {
		return &ColorError{Value: string(rune(c))}
	}
	return nil
}

// ParseColor converts a raw token into a Color. The token must be exactly
// one uppercase ASCII letter.
func ParseColor(token string) (Color, error) {
	if len(token) != 1 {
		return 0, &ColorError{Value: token}
	}
	c := Color(token[0])
	if err := ValidateColor(c); err != nil {
		return 0, &ColorError{Value: token}
	}
	return c, nil
}
