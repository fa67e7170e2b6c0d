package document

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/issue-butler/internal/domain"
	"github.com/runoshun/issue-butler/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() *domain.DocumentData {
	return &domain.DocumentData{
		TeamName: "PLATFORM Team",
		Cards: []domain.Card{
			{
				ID:       1001,
				Number:   12,
				Title:    "Checkout <broken>",
				BodyHTML: "<p>Steps <strong>here</strong></p>",
				TeamName: "PLATFORM Team",
				Labels: []domain.StyledLabel{
					{Name: "bug", Style: domain.StyleFor("A45072")},
				},
			},
			{ID: 1002, Number: 13, Title: "Second", TeamName: "PLATFORM Team"},
		},
	}
}

func TestCompile_DefaultTemplate(t *testing.T) {
	html, err := Compile(domain.DefaultReportTemplate(), sampleData())

	require.NoError(t, err)
	assert.Contains(t, html, `id="issue-1001"`)
	assert.Contains(t, html, "#12")
	assert.Contains(t, html, "Checkout &lt;broken&gt;")
	assert.Contains(t, html, "<p>Steps <strong>here</strong></p>")
	assert.Contains(t, html, `style="background-color: #A45072; color: #FFFFFF;"`)
	assert.Contains(t, html, "PLATFORM Team")
	assert.NotContains(t, html, "ZgotmplZ")
	assert.Less(t, strings.Index(html, "issue-1001"), strings.Index(html, "issue-1002"))
}

func TestCompile_TemplateErrors(t *testing.T) {
	_, err := Compile("{{range .Cards}", sampleData())
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)

	_, err = Compile("{{.Missing}}", sampleData())
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestRenderer_Generate_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		doc  domain.Document
		opts domain.RenderOptions
	}{
		{"empty template", domain.Document{Template: "", Data: &domain.DocumentData{}, Path: "/x"}, domain.DefaultRenderOptions()},
		{"blank template", domain.Document{Template: "  \n", Data: sampleData(), Path: "/x"}, domain.DefaultRenderOptions()},
		{"nil data", domain.Document{Template: "<p></p>", Path: "/x"}, domain.DefaultRenderOptions()},
		{"file without path", domain.Document{Template: "<p></p>", Data: sampleData(), Mode: domain.OutputFile}, domain.DefaultRenderOptions()},
		{"unknown mode", domain.Document{Template: "<p></p>", Data: sampleData(), Mode: "fax"}, domain.DefaultRenderOptions()},
		{"bad format", domain.Document{Template: "<p></p>", Data: sampleData(), Mode: domain.OutputBuffer}, domain.RenderOptions{Format: "B9", Orientation: domain.Portrait}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raster := &testutil.MockRasterizer{}
			r := NewRenderer(raster)

			artifact, err := r.Generate(context.Background(), tt.doc, tt.opts)

			assert.Nil(t, artifact)
			assert.ErrorIs(t, err, domain.ErrMalformedDocument)
			assert.Empty(t, raster.HTML, "rasterizer must not be called")
		})
	}
}

func TestRenderer_Generate_Buffer(t *testing.T) {
	raster := &testutil.MockRasterizer{}
	r := NewRenderer(raster)
	opts := domain.DefaultRenderOptions()
	opts.Footer = "<span class=\"pageNumber\"></span>"

	artifact, err := r.Generate(context.Background(), domain.Document{
		Template: domain.DefaultReportTemplate(),
		Data:     sampleData(),
		Mode:     domain.OutputBuffer,
	}, opts)

	require.NoError(t, err)
	assert.Equal(t, domain.OutputBuffer, artifact.Mode)
	assert.True(t, len(artifact.Buffer) > 0)
	assert.Nil(t, artifact.Stream)
	require.Len(t, raster.Options, 1)
	assert.Equal(t, opts, raster.Options[0])
}

func TestRenderer_Generate_Stream(t *testing.T) {
	raster := &testutil.MockRasterizer{}
	r := NewRenderer(raster)

	artifact, err := r.Generate(context.Background(), domain.Document{
		Template: "<p>{{len .Cards}}</p>",
		Data:     sampleData(),
		Mode:     domain.OutputStream,
	}, domain.DefaultRenderOptions())

	require.NoError(t, err)
	require.NotNil(t, artifact.Stream)
	defer func() { _ = artifact.Stream.Close() }()
	data, err := io.ReadAll(artifact.Stream)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4\n<p>2</p>", string(data))
}

func TestRenderer_Generate_BufferAndFileMatch(t *testing.T) {
	r := NewRenderer(&testutil.MockRasterizer{})
	opts := domain.DefaultRenderOptions()
	path := filepath.Join(t.TempDir(), "nested", "platform.pdf")

	buf, err := r.Generate(context.Background(), domain.Document{
		Template: domain.DefaultReportTemplate(),
		Data:     sampleData(),
		Mode:     domain.OutputBuffer,
	}, opts)
	require.NoError(t, err)

	file, err := r.Generate(context.Background(), domain.Document{
		Template: domain.DefaultReportTemplate(),
		Data:     sampleData(),
		Path:     path,
	}, opts)
	require.NoError(t, err)

	assert.Equal(t, domain.OutputFile, file.Mode)
	assert.Equal(t, path, file.Path)
	assert.Equal(t, int64(len(buf.Buffer)), file.BytesWritten)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf.Buffer, written)
}

func TestRenderer_Generate_RasterizeError(t *testing.T) {
	cause := errors.New("chrome not found")
	r := NewRenderer(&testutil.MockRasterizer{Err: cause})

	_, err := r.Generate(context.Background(), domain.Document{
		Template: "<p></p>",
		Data:     sampleData(),
		Mode:     domain.OutputBuffer,
	}, domain.DefaultRenderOptions())

	assert.ErrorIs(t, err, domain.ErrRender)
	assert.ErrorIs(t, err, cause)
}

func TestRenderer_Generate_WriteError(t *testing.T) {
	// A regular file where a directory is expected.
	dir := t.TempDir()
	blocker := testutil.WriteFile(t, dir, "blocker", "x")

	r := NewRenderer(&testutil.MockRasterizer{})
	_, err := r.Generate(context.Background(), domain.Document{
		Template: "<p></p>",
		Data:     sampleData(),
		Path:     filepath.Join(blocker, "out.pdf"),
	}, domain.DefaultRenderOptions())

	assert.ErrorIs(t, err, domain.ErrRender)
}
