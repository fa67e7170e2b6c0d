package domain

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// OutputMode selects how a generated document is delivered.
type OutputMode string

// Output modes.
const (
	OutputFile   OutputMode = "file"
	OutputBuffer OutputMode = "buffer"
	OutputStream OutputMode = "stream"
)

// Document is the input to document generation.
// Fields are ordered to minimize memory padding.
type Document struct {
	Data     *DocumentData
	Template string // HTML template source
	Path     string // Destination, used only in file mode
	Mode     OutputMode
}

// DocumentData is bound to the template.
type DocumentData struct {
	TeamName string
	Cards    []Card
}

// Artifact is the result of document generation.
// Exactly one of Buffer, Stream or Path is set, according to Mode.
// Fields are ordered to minimize memory padding.
type Artifact struct {
	Stream       io.ReadCloser // Caller must close
	Mode         OutputMode
	Path         string
	Buffer       []byte
	BytesWritten int64
}

// PageFormat is a named paper size.
type PageFormat string

// Supported page formats.
const (
	FormatA3      PageFormat = "A3"
	FormatA4      PageFormat = "A4"
	FormatA5      PageFormat = "A5"
	FormatLegal   PageFormat = "Legal"
	FormatLetter  PageFormat = "Letter"
	FormatTabloid PageFormat = "Tabloid"
)

// paperSizes holds width and height in inches for portrait orientation.
var paperSizes = map[PageFormat][2]float64{
	FormatA3:      {11.7, 16.54},
	FormatA4:      {8.27, 11.69},
	FormatA5:      {5.83, 8.27},
	FormatLegal:   {8.5, 14},
	FormatLetter:  {8.5, 11},
	FormatTabloid: {11, 17},
}

// PaperSize returns the portrait width and height of the format in inches.
func (f PageFormat) PaperSize() (width, height float64, err error) {
	size, ok := paperSizes[f]
	if !ok {
		return 0, 0, fmt.Errorf("unknown page format %q", f)
	}
	return size[0], size[1], nil
}

// Orientation is the page orientation.
type Orientation string

// Orientations.
const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Margin holds per-side page margins. Each side is a CSS-like length such as "10mm".
type Margin struct {
	Top    string
	Right  string
	Bottom string
	Left   string
}

// UniformMargin returns a margin with the same length on every side.
func UniformMargin(length string) Margin {
	return Margin{Top: length, Right: length, Bottom: length, Left: length}
}

// Inches converts every side to inches.
func (m Margin) Inches() (top, right, bottom, left float64, err error) {
	sides := []string{m.Top, m.Right, m.Bottom, m.Left}
	out := make([]float64, len(sides))
	for i, s := range sides {
		out[i], err = ParseLength(s)
		if err != nil {
			return 0, 0, 0, 0, err
		}
	}
	return out[0], out[1], out[2], out[3], nil
}

// unitsPerInch lists supported length units.
var unitsPerInch = map[string]float64{
	"in": 1,
	"cm": 2.54,
	"mm": 25.4,
	"px": 96,
}

// ParseLength converts a length such as "10mm", "1in" or "12" (pixels) to inches.
// An empty length is zero.
func ParseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	num, unit := s, "px"
	if len(s) > 2 {
		if _, ok := unitsPerInch[s[len(s)-2:]]; ok {
			num, unit = strings.TrimSpace(s[:len(s)-2]), s[len(s)-2:]
		}
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	return v / unitsPerInch[unit], nil
}

// RenderOptions controls page layout. Passed through unmodified to the rasterizer.
// Fields are ordered to minimize memory padding.
type RenderOptions struct {
	Format          PageFormat
	Orientation     Orientation
	Header          string // Optional header HTML template
	Footer          string // Optional footer HTML template
	Margin          Margin
	PrintBackground bool
}

// DefaultRenderOptions returns A4 portrait with a 10mm border.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Format:          FormatA4,
		Orientation:     Portrait,
		Margin:          UniformMargin("10mm"),
		PrintBackground: true,
	}
}

// Validate checks that the options can be rasterized.
func (o RenderOptions) Validate() error {
	if _, _, err := o.Format.PaperSize(); err != nil {
		return err
	}
	switch o.Orientation {
	case Portrait, Landscape:
	default:
		return fmt.Errorf("unknown orientation %q", o.Orientation)
	}
	if _, _, _, _, err := o.Margin.Inches(); err != nil {
		return fmt.Errorf("margin: %w", err)
	}
	return nil
}
