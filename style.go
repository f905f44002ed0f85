package ember

// Color is a 32-bit RGBA value in 0xRRGGBBAA layout.
type Color uint32

// RGBA splits the color into its four channels.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Default palette. Themes loaded from TOML may override any of these;
// see theme.go.
const (
	ColorPrimary          Color = 0x4075DBFF
	ColorPrimaryHover     Color = 0x598FF5FF
	ColorPrimaryPressed   Color = 0x265CC2FF
	ColorSecondary        Color = 0x404040FF
	ColorSecondaryHover   Color = 0x595959FF
	ColorSecondaryPressed Color = 0x262626FF
	ColorDanger           Color = 0xDB4040FF
	ColorDangerHover      Color = 0xF55959FF
	ColorDangerPressed    Color = 0xC22626FF
	ColorSuccess          Color = 0x40C240FF
	ColorSuccessHover     Color = 0x59DB59FF
	ColorSuccessPressed   Color = 0x26A826FF
	ColorWarning          Color = 0xF5C20DFF
	ColorWarningHover     Color = 0xFFDB26FF
	ColorWarningPressed   Color = 0xDBA800FF
	ColorGhostHover       Color = 0xFFFFFF33
	ColorText             Color = 0xE5E7EBFF
	ColorTextMuted        Color = 0x9CA3AFFF
	ColorPanel            Color = 0x1F2937FF
	ColorPanelBorder      Color = 0x374151FF
	ColorOverlay          Color = 0x00000099
	ColorTransparent      Color = 0x00000000
)

// ButtonStyle selects a button color variant.
type ButtonStyle uint8

const (
	// ButtonPrimary is for the main action (blue).
	ButtonPrimary ButtonStyle = iota
	// ButtonSecondary is for auxiliary actions (gray).
	ButtonSecondary
	// ButtonDanger is for destructive actions (red).
	ButtonDanger
	// ButtonSuccess is for positive actions (green).
	ButtonSuccess
	// ButtonWarning is for cautionary actions (yellow).
	ButtonWarning
	// ButtonGhost is transparent with a border only.
	ButtonGhost
)

// BaseColor returns the resting background color for the style.
func (s ButtonStyle) BaseColor() Color {
	switch s {
	case ButtonSecondary:
		return ColorSecondary
	case ButtonDanger:
		return ColorDanger
	case ButtonSuccess:
		return ColorSuccess
	case ButtonWarning:
		return ColorWarning
	case ButtonGhost:
		return ColorTransparent
	default:
		return ColorPrimary
	}
}

// HoverColor returns the background color while hovered.
func (s ButtonStyle) HoverColor() Color {
	switch s {
	case ButtonSecondary:
		return ColorSecondaryHover
	case ButtonDanger:
		return ColorDangerHover
	case ButtonSuccess:
		return ColorSuccessHover
	case ButtonWarning:
		return ColorWarningHover
	case ButtonGhost:
		return ColorGhostHover
	default:
		return ColorPrimaryHover
	}
}

// PressedColor returns the background color while pressed.
func (s ButtonStyle) PressedColor() Color {
	switch s {
	case ButtonSecondary:
		return ColorSecondaryPressed
	case ButtonDanger:
		return ColorDangerPressed
	case ButtonSuccess:
		return ColorSuccessPressed
	case ButtonWarning:
		return ColorWarningPressed
	case ButtonGhost:
		return ColorGhostHover
	default:
		return ColorPrimaryPressed
	}
}

// ButtonSize selects button padding and font dimensions.
type ButtonSize uint8

const (
	ButtonSmall ButtonSize = iota
	ButtonMedium
	ButtonLarge
	ButtonXLarge
)

// Height returns the button height in logical pixels.
func (s ButtonSize) Height() float64 {
	switch s {
	case ButtonSmall:
		return 28
	case ButtonLarge:
		return 48
	case ButtonXLarge:
		return 60
	default:
		return 36
	}
}

// FontSize returns the label font size for the button size.
func (s ButtonSize) FontSize() float64 {
	switch s {
	case ButtonSmall:
		return 12
	case ButtonLarge:
		return 18
	case ButtonXLarge:
		return 22
	default:
		return 14
	}
}

// LabelStyle selects a text emphasis level.
type LabelStyle uint8

const (
	LabelBody LabelStyle = iota
	LabelTitle
	LabelSubtitle
	LabelCaption
)

// TextColor returns the label color for the style.
func (s LabelStyle) TextColor() Color {
	if s == LabelCaption {
		return ColorTextMuted
	}
	return ColorText
}

// FontSize returns the label font size for the style.
func (s LabelStyle) FontSize() float64 {
	switch s {
	case LabelTitle:
		return 22
	case LabelSubtitle:
		return 17
	case LabelCaption:
		return 12
	default:
		return 14
	}
}

// PanelStyle selects a panel chrome variant.
type PanelStyle uint8

const (
	PanelPlain PanelStyle = iota
	PanelBordered
	PanelElevated
)

// ToastLevel classifies a toast notification.
type ToastLevel uint8

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// Color returns the accent color for the toast level.
func (l ToastLevel) Color() Color {
	switch l {
	case ToastSuccess:
		return ColorSuccess
	case ToastWarning:
		return ColorWarning
	case ToastError:
		return ColorDanger
	default:
		return ColorPrimary
	}
}

// Orientation distinguishes horizontal from vertical separators.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)
