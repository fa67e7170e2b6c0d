package domain

import "fmt"

// Text colors used on label badges.
const (
	textLight = "#FFFFFF"
	textDark  = "#000000"
)

// labelTextColors maps known label colors to the text color that reads best on them.
var labelTextColors = map[string]string{
	"3941AC": textLight,
	"FBCA04": textDark,
	"EBEA93": textDark,
	"3CCD91": textDark,
	"1F78C4": textLight,
	"A45072": textLight,
}

// StyleFor returns the badge style for a label color.
// Colors outside the palette get white text on the given background.
func StyleFor(color string) string {
	text, ok := labelTextColors[color]
	if !ok {
		text = textLight
	}
	return fmt.Sprintf("background-color: #%s; color: %s;", color, text)
}

// StyleLabels maps labels to styled labels, preserving order.
func StyleLabels(labels []Label) []StyledLabel {
	styled := make([]StyledLabel, len(labels))
	for i, l := range labels {
		styled[i] = StyledLabel{
			Name:  l.Name,
			Style: StyleFor(l.Color),
		}
	}
	return styled
}
