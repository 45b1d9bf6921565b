package arpctheme

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfimage "seehuhn.de/go/pdf/graphics/image"

	"github.com/dylan-turner25/arpctheme/internal/eps"
)

// Export errors.
var (
	// ErrNoFormats is returned when the format list resolves to empty.
	ErrNoFormats = errors.New("arpctheme: no output formats requested")

	// ErrUnknownFormat is returned by [ParseFormat] for an unrecognized
	// format name.
	ErrUnknownFormat = errors.New("arpctheme: unknown output format")
)

// Format identifies a figure output format.
type Format int

// Supported output formats.
const (
	FormatPNG Format = iota
	FormatPDF
	FormatEPS
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatPDF:
		return "pdf"
	case FormatEPS:
		return "eps"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// valid reports whether f is one of the supported formats.
func (f Format) valid() bool {
	return f == FormatPNG || f == FormatPDF || f == FormatEPS
}

// ParseFormat converts a format name ("png", "pdf", "eps", with or without
// a leading dot, case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png":
		return FormatPNG, nil
	case "pdf":
		return FormatPDF, nil
	case "eps":
		return FormatEPS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// saveOptions holds the optional configuration of a Save call.
type saveOptions struct {
	formats   []Format
	dpi       float64
	header    []string
	rows      [][]string
	writeData bool
}

func defaultSaveOptions() saveOptions {
	return saveOptions{
		formats: []Format{FormatPNG},
		dpi:     96,
	}
}

// SaveOption configures a [Save] call.
type SaveOption func(*saveOptions)

// WithFormats replaces the output format set. The default is PNG only.
// Duplicates are written once, in first-occurrence order.
func WithFormats(formats ...Format) SaveOption {
	return func(o *saveOptions) {
		o.formats = formats
	}
}

// WithDPI sets the raster resolution used to size the PDF and EPS pages
// (points = pixels / dpi × 72). The default is 96.
func WithDPI(dpi float64) SaveOption {
	return func(o *saveOptions) {
		o.dpi = dpi
	}
}

// WithData additionally writes the figure's source data as a CSV sidecar
// next to the image files, sharing the base filename.
func WithData(header []string, rows [][]string) SaveOption {
	return func(o *saveOptions) {
		o.header = header
		o.rows = rows
		o.writeData = true
	}
}

// Save writes the rendered figure to one file per requested format.
// The extension of path, if any, is stripped; each output is written as
// base filename plus the format's extension (and ".csv" for the optional
// data sidecar).
//
// Arguments are validated before any file is written. A failure while
// writing aborts and is returned; files already written are kept.
func Save(dc *gg.Context, path string, opts ...SaveOption) error {
	if dc == nil {
		return errors.New("arpctheme: nil drawing context")
	}
	o := defaultSaveOptions()
	for _, opt := range opts {
		opt(&o)
	}

	formats, err := normalizeFormats(o.formats)
	if err != nil {
		return err
	}
	if o.dpi <= 0 {
		return fmt.Errorf("arpctheme: dpi must be positive, got %g", o.dpi)
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	if base == "" {
		return fmt.Errorf("arpctheme: empty output path %q", path)
	}

	for _, f := range formats {
		out := base + "." + f.String()
		switch f {
		case FormatPNG:
			err = savePNG(dc, out)
		case FormatPDF:
			err = savePDF(dc, out, o.dpi)
		case FormatEPS:
			err = saveEPS(dc, out, o.dpi)
		}
		if err != nil {
			return fmt.Errorf("arpctheme: write %s: %w", out, err)
		}
	}

	if o.writeData {
		out := base + ".csv"
		if err := saveCSV(out, o.header, o.rows); err != nil {
			return fmt.Errorf("arpctheme: write %s: %w", out, err)
		}
	}
	return nil
}

// normalizeFormats validates the format list and removes duplicates,
// keeping first-occurrence order.
func normalizeFormats(formats []Format) ([]Format, error) {
	if len(formats) == 0 {
		return nil, ErrNoFormats
	}
	seen := make(map[Format]bool, len(formats))
	out := make([]Format, 0, len(formats))
	for _, f := range formats {
		if !f.valid() {
			return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out, nil
}

func savePNG(dc *gg.Context, path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return dc.EncodePNG(f)
}

// savePDF writes a single-page PDF sized to the figure, with the raster
// embedded losslessly and scaled to fill the page.
func savePDF(dc *gg.Context, path string, dpi float64) error {
	wPt := float64(dc.Width()) / dpi * 72
	hPt := float64(dc.Height()) / dpi * 72

	page, err := document.CreateSinglePage(path,
		&pdf.Rectangle{URx: wPt, URy: hPt}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	img := &pdfimage.PNG{Data: dc.Image()}
	page.PushGraphicsState()
	// Images occupy the unit square; scale it up to the full page.
	page.Transform(matrix.Scale(wPt, hPt))
	page.DrawXObject(img)
	page.PopGraphicsState()

	return page.Close()
}

func saveEPS(dc *gg.Context, path string, dpi float64) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	wPt := float64(dc.Width()) / dpi * 72
	hPt := float64(dc.Height()) / dpi * 72
	return eps.Encode(f, dc.Image(), wPt, hPt)
}

func saveCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	w := csv.NewWriter(f)
	if len(header) > 0 {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
