package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/albapepper/qbscore/internal/pipeline"
)

// Render draws res and writes it to path. The image format follows the file
// extension (png, svg, pdf, jpg, ...). The figure is encoded in memory and
// moved into place only once complete, so a failed render leaves no file.
func Render(res *pipeline.Result, path string, opts Options) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		return &RenderError{Op: "encode", Err: fmt.Errorf("no image format in %q", path)}
	}

	var buf bytes.Buffer
	if err := Write(res, &buf, format, opts); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".qbscore-*."+format)
	if err != nil {
		return &RenderError{Op: "save", Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &RenderError{Op: "save", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &RenderError{Op: "save", Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &RenderError{Op: "save", Err: err}
	}
	return nil
}

// Write encodes the chart for res in format into w.
func Write(res *pipeline.Result, w io.Writer, format string, opts Options) error {
	opts = opts.withDefaults()

	p, err := Build(res)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return &RenderError{Op: "encode", Err: err}
	}
	if _, err := wt.WriteTo(w); err != nil {
		return &RenderError{Op: "encode", Err: err}
	}
	return nil
}
