// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/issue-butler/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads report configuration from TOML, YAML or JSON files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileConfig is the on-disk shape shared by all formats.
type fileConfig struct {
	Issues    *[]fileReference `toml:"issues" yaml:"issues" json:"issues"`
	Team      string           `toml:"team" yaml:"team" json:"team"`
	Owner     string           `toml:"owner" yaml:"owner" json:"owner"`
	OutputDir string           `toml:"output_dir" yaml:"output_dir" json:"output_dir"`
	Template  string           `toml:"template" yaml:"template" json:"template"`
	PDF       filePDF          `toml:"pdf" yaml:"pdf" json:"pdf"`
}

// fileReference accepts the id as a number or a numeric string.
type fileReference struct {
	ID   any    `toml:"id" yaml:"id" json:"id"`
	Repo string `toml:"repo" yaml:"repo" json:"repo"`
}

type filePDF struct {
	Margin          *fileMargin `toml:"margin" yaml:"margin" json:"margin"`
	PrintBackground *bool       `toml:"print_background" yaml:"print_background" json:"print_background"`
	Format          string      `toml:"format" yaml:"format" json:"format"`
	Orientation     string      `toml:"orientation" yaml:"orientation" json:"orientation"`
	Border          string      `toml:"border" yaml:"border" json:"border"`
	Header          string      `toml:"header" yaml:"header" json:"header"`
	Footer          string      `toml:"footer" yaml:"footer" json:"footer"`
}

type fileMargin struct {
	Top    string `toml:"top" yaml:"top" json:"top"`
	Right  string `toml:"right" yaml:"right" json:"right"`
	Bottom string `toml:"bottom" yaml:"bottom" json:"bottom"`
	Left   string `toml:"left" yaml:"left" json:"left"`
}

// Load reads and converts the report config at path.
// Missing files, unknown extensions, decode errors and a missing issues list are configuration errors.
func (l *Loader) Load(path string) (*domain.ReportConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed reading config file: %w", domain.ErrConfiguration, err)
	}

	var fc fileConfig
	if err := decode(path, content, &fc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrConfiguration, path, err)
	}
	if fc.Issues == nil {
		return nil, fmt.Errorf("%w: %s: issues list is missing", domain.ErrConfiguration, path)
	}

	cfg := &domain.ReportConfig{
		Team:         fc.Team,
		Owner:        fc.Owner,
		OutputDir:    fc.OutputDir,
		TemplatePath: resolveRelative(path, fc.Template),
		References:   make([]domain.IssueReference, 0, len(*fc.Issues)),
		Render:       fc.PDF.toDomain(),
	}
	for i, r := range *fc.Issues {
		id, err := coerceID(r.ID)
		if err != nil {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("issues[%d]: %v", i, err))
		}
		cfg.References = append(cfg.References, domain.IssueReference{ID: id, Repo: r.Repo})
	}

	return cfg, nil
}

// decode picks a decoder by file extension.
func decode(path string, content []byte, fc *fileConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(content, fc)
	case ".yaml", ".yml":
		return yaml.Unmarshal(content, fc)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.UseNumber()
		return dec.Decode(fc)
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}

// coerceID converts a decoded id to a positive int. Invalid ids become 0.
func coerceID(v any) (int, error) {
	var n int64
	switch id := v.(type) {
	case int:
		n = int64(id)
	case int64:
		n = id
	case uint64:
		if id > math.MaxInt64 {
			return 0, fmt.Errorf("id %d out of range", id)
		}
		n = int64(id)
	case float64:
		if id != math.Trunc(id) {
			return 0, fmt.Errorf("id %v is not an integer", id)
		}
		n = int64(id)
	case json.Number:
		parsed, err := id.Int64()
		if err != nil {
			return 0, fmt.Errorf("id %q is not an integer", id.String())
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("id %q is not a number", id)
		}
		n = parsed
	case nil:
		return 0, errors.New("id is missing")
	default:
		return 0, fmt.Errorf("id has unsupported type %T", v)
	}
	if n <= 0 || n > math.MaxInt32 {
		return 0, fmt.Errorf("id %d must be a positive integer", n)
	}
	return int(n), nil
}

func (p filePDF) toDomain() domain.RenderOptions {
	opts := domain.DefaultRenderOptions()
	if p.Format != "" {
		opts.Format = normalizeFormat(p.Format)
	}
	if p.Orientation != "" {
		opts.Orientation = domain.Orientation(strings.ToLower(p.Orientation))
	}
	if p.Border != "" {
		opts.Margin = domain.UniformMargin(p.Border)
	}
	if m := p.Margin; m != nil {
		opts.Margin = domain.Margin{
			Top:    orDefault(m.Top, opts.Margin.Top),
			Right:  orDefault(m.Right, opts.Margin.Right),
			Bottom: orDefault(m.Bottom, opts.Margin.Bottom),
			Left:   orDefault(m.Left, opts.Margin.Left),
		}
	}
	if p.PrintBackground != nil {
		opts.PrintBackground = *p.PrintBackground
	}
	opts.Header = p.Header
	opts.Footer = p.Footer
	return opts
}

// normalizeFormat matches page formats case-insensitively ("a4" -> "A4").
func normalizeFormat(s string) domain.PageFormat {
	for _, f := range []domain.PageFormat{
		domain.FormatA3, domain.FormatA4, domain.FormatA5,
		domain.FormatLegal, domain.FormatLetter, domain.FormatTabloid,
	} {
		if strings.EqualFold(s, string(f)) {
			return f
		}
	}
	return domain.PageFormat(s)
}

// resolveRelative interprets p relative to the directory of the config file.
func resolveRelative(configPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
