package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Stages
		Todo:       "#5F87D7",
		InProgress: "#FFD700",
		Done:       "#5FD75F",

		// Semantic
		Create: "#5FD75F",
		Edit:   "#5F87D7",

		// UI elements
		ColumnBorder:   "#585858",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Status line
		ErrorFg: "#FF5F5F",
		InfoFg:  "#00AFFF",
	}
}
