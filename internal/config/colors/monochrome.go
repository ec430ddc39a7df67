package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Todo:       "#FFFFFF",
		InProgress: "#FFFFFF",
		Done:       "#FFFFFF",

		Create: "#FFFFFF",
		Edit:   "#FFFFFF",

		ColumnBorder:   "#585858",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		ErrorFg: "#FFFFFF",
		InfoFg:  "#D0D0D0",
	}
}
