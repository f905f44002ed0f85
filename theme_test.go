package ember

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	data := []byte(`
name = "midnight"

[colors]
primary = "#102030"
text = "#FFFFFFCC"

[dimensions]
padding = 12.0
corner_radius = 6.0
`)
	theme, err := ParseTheme(data)
	require.NoError(t, err)

	assert.Equal(t, "midnight", theme.Name)
	assert.Equal(t, Color(0x102030FF), theme.Color("primary", ColorPrimary))
	assert.Equal(t, Color(0xFFFFFFCC), theme.Color("text", ColorText))
	assert.Equal(t, 12.0, theme.Dimensions.Padding)

	// Unset entries fall back to the built-in palette.
	assert.Equal(t, ColorDanger, theme.Color("danger", ColorDanger))
	assert.Equal(t, ColorPanel, theme.Color("unknown", ColorPanel))
}

func TestParseThemeRejectsBadColor(t *testing.T) {
	_, err := ParseTheme([]byte(`
[colors]
primary = "notacolor"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary")
}

func TestParseThemeRejectsBadTOML(t *testing.T) {
	_, err := ParseTheme([]byte(`name = `))
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#FF0000", want: 0xFF0000FF},
		{in: "#00FF0080", want: 0x00FF0080},
		{in: "102030", want: 0x102030FF},
		{in: "#FFF", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color(0x11223344).RGBA()
	assert.Equal(t, uint8(0x11), r)
	assert.Equal(t, uint8(0x22), g)
	assert.Equal(t, uint8(0x33), b)
	assert.Equal(t, uint8(0x44), a)
}
