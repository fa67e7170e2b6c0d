// Package pdf prints HTML documents to PDF with headless Chrome.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/runoshun/issue-butler/internal/domain"
)

// Ensure Rasterizer implements domain.Rasterizer.
var _ domain.Rasterizer = (*Rasterizer)(nil)

// Options configures the browser launch.
type Options struct {
	Bin       string // Chrome/Chromium binary; empty lets the launcher find or download one
	NoSandbox bool   // Required when running as root in containers
}

// Rasterizer launches one browser per document.
type Rasterizer struct {
	logger *slog.Logger
	opts   Options
}

// NewRasterizer creates a new Rasterizer.
func NewRasterizer(opts Options, logger *slog.Logger) *Rasterizer {
	return &Rasterizer{
		logger: logger,
		opts:   opts,
	}
}

// Rasterize prints html to PDF. The browser stays alive until the returned reader is closed.
func (r *Rasterizer) Rasterize(ctx context.Context, html string, opts domain.RenderOptions) (io.ReadCloser, error) {
	req, err := PrintRequest(opts)
	if err != nil {
		return nil, err
	}

	l := launcher.New().Context(ctx).Headless(true).NoSandbox(r.opts.NoSandbox)
	if r.opts.Bin != "" {
		l = l.Bin(r.opts.Bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	r.logger.Debug("browser launched", "control_url", controlURL)

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		// Close needs a live connection; stop the process directly.
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	release := func() error {
		err := browser.Close()
		l.Cleanup()
		return err
	}

	stream, err := r.print(browser, html, req)
	if err != nil {
		return nil, errors.Join(err, release())
	}
	return &pdfStream{Reader: stream, release: release}, nil
}

func (r *Rasterizer) print(browser *rod.Browser, html string, req *proto.PagePrintToPDF) (io.Reader, error) {
	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait for document: %w", err)
	}
	stream, err := page.PDF(req)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return stream, nil
}

// PrintRequest converts render options to a Chrome print request.
func PrintRequest(opts domain.RenderOptions) (*proto.PagePrintToPDF, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	width, height, _ := opts.Format.PaperSize()
	top, right, bottom, left, _ := opts.Margin.Inches()

	req := &proto.PagePrintToPDF{
		Landscape:       opts.Orientation == domain.Landscape,
		PrintBackground: opts.PrintBackground,
		PaperWidth:      &width,
		PaperHeight:     &height,
		MarginTop:       &top,
		MarginRight:     &right,
		MarginBottom:    &bottom,
		MarginLeft:      &left,
	}
	if opts.Header != "" || opts.Footer != "" {
		req.DisplayHeaderFooter = true
		// Chrome substitutes its default date/title header for an empty template.
		req.HeaderTemplate = orBlank(opts.Header)
		req.FooterTemplate = orBlank(opts.Footer)
	}
	return req, nil
}

func orBlank(tmpl string) string {
	if tmpl == "" {
		return "<span></span>"
	}
	return tmpl
}

// pdfStream releases the browser when closed.
type pdfStream struct {
	io.Reader
	release func() error
	closed  bool
}

func (s *pdfStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.release()
}
