package content

// ThemeLayout is the fixed visual token set a theme contributes to the page.
// Consumed verbatim by the renderer.
type ThemeLayout struct {
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	AccentColor     string `json:"accent_color"`
	FontFamily      string `json:"font_family"`
}

// Theme is a named visual skin selectable by the order owner.
type Theme struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Layout      ThemeLayout `json:"layout"`
	IsPremium   bool        `json:"is_premium"`
}

// The catalog is fixed. IsPremium is display-only; there is no billing gate.
var themes = []Theme{
	{
		ID:          "golden-hour",
		Name:        "Golden Hour",
		Description: "Warm sunset tones for joyful memories.",
		Layout: ThemeLayout{
			BackgroundColor: "#fdf6ec",
			TextColor:       "#3e2f23",
			AccentColor:     "#d98841",
			FontFamily:      "Lora, serif",
		},
	},
	{
		ID:          "midnight",
		Name:        "Midnight",
		Description: "Deep blues and soft starlight for quiet moments.",
		Layout: ThemeLayout{
			BackgroundColor: "#10162a",
			TextColor:       "#e8ebf5",
			AccentColor:     "#7f9cf5",
			FontFamily:      "Inter, sans-serif",
		},
		IsPremium: true,
	},
	{
		ID:          "meadow",
		Name:        "Meadow",
		Description: "Fresh greens and airy light for new beginnings.",
		Layout: ThemeLayout{
			BackgroundColor: "#f4f9f1",
			TextColor:       "#26362a",
			AccentColor:     "#5d9b68",
			FontFamily:      "Nunito, sans-serif",
		},
	},
}

// Themes returns the catalog in display order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// ThemeByID looks up a theme by its stable key.
func ThemeByID(id string) (Theme, bool) {
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}
