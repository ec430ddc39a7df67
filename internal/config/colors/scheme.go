package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Column heading colors, one per stage
	Todo       string `yaml:"todo"`
	InProgress string `yaml:"in_progress"`
	Done       string `yaml:"done"`

	// Semantic colors
	Create string `yaml:"create"` // Green - add input
	Edit   string `yaml:"edit"`   // Blue - inline edit row

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status line
	ErrorFg string `yaml:"error_fg"`
	InfoFg  string `yaml:"info_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Todo, preset.Todo)
	fill(&c.InProgress, preset.InProgress)
	fill(&c.Done, preset.Done)
	fill(&c.Create, preset.Create)
	fill(&c.Edit, preset.Edit)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.InfoFg, preset.InfoFg)
}

// MergeFrom overrides colors with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	take := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	take(&c.Preset, other.Preset)
	take(&c.Accent, other.Accent)
	take(&c.Todo, other.Todo)
	take(&c.InProgress, other.InProgress)
	take(&c.Done, other.Done)
	take(&c.Create, other.Create)
	take(&c.Edit, other.Edit)
	take(&c.ColumnBorder, other.ColumnBorder)
	take(&c.SelectedBorder, other.SelectedBorder)
	take(&c.SelectedBg, other.SelectedBg)
	take(&c.Title, other.Title)
	take(&c.Subtle, other.Subtle)
	take(&c.Normal, other.Normal)
	take(&c.ErrorFg, other.ErrorFg)
	take(&c.InfoFg, other.InfoFg)
}
