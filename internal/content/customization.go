package content

// Slider bounds, enforced at the input boundary. Values are clamped, never
// stored out of range.
const (
	MinFontSize     = 12
	MaxFontSize     = 24
	MinSpacing      = 8
	MaxSpacing      = 48
	MinBorderRadius = 0
	MaxBorderRadius = 32
)

// Customization is the owner-adjustable slider set layered on top of a
// theme. The three fields are independent; there are no cross-field rules.
type Customization struct {
	FontSize     int `json:"font_size"`
	Spacing      int `json:"spacing"`
	BorderRadius int `json:"border_radius"`
}

// DefaultCustomization is applied to a fresh aggregate until the owner
// touches the sliders.
func DefaultCustomization() Customization {
	return Customization{FontSize: 16, Spacing: 24, BorderRadius: 12}
}

// Clamp returns a copy with every slider forced into its declared range.
func (c Customization) Clamp() Customization {
	return Customization{
		FontSize:     clamp(c.FontSize, MinFontSize, MaxFontSize),
		Spacing:      clamp(c.Spacing, MinSpacing, MaxSpacing),
		BorderRadius: clamp(c.BorderRadius, MinBorderRadius, MaxBorderRadius),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ResolvedStyle is the single style context both renderers consume. The
// theme and the customization own disjoint fields, so the merge has no
// conflicts. It is recomputed on every render, never cached: slider edits
// after publication are immediately visible on the live page.
type ResolvedStyle struct {
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	AccentColor     string `json:"accent_color"`
	FontFamily      string `json:"font_family"`
	FontSize        int    `json:"font_size"`
	Spacing         int    `json:"spacing"`
	BorderRadius    int    `json:"border_radius"`
}

// ResolveStyle merges a theme's fixed tokens with the owner's sliders.
func ResolveStyle(t Theme, c Customization) ResolvedStyle {
	c = c.Clamp()
	return ResolvedStyle{
		BackgroundColor: t.Layout.BackgroundColor,
		TextColor:       t.Layout.TextColor,
		AccentColor:     t.Layout.AccentColor,
		FontFamily:      t.Layout.FontFamily,
		FontSize:        c.FontSize,
		Spacing:         c.Spacing,
		BorderRadius:    c.BorderRadius,
	}
}
