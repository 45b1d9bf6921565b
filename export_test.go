package arpctheme

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

func testFigure(t *testing.T) *gg.Context {
	t.Helper()
	dc := gg.NewContext(80, 60)
	dc.ClearWithColor(gg.White)
	dc.SetColor(mustColor("blue").Color())
	dc.DrawRectangle(10, 10, 40, 30)
	if err := dc.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	return dc
}

func TestSaveDefaultIsPNGOnly(t *testing.T) {
	dc := testFigure(t)
	base := filepath.Join(t.TempDir(), "fig")

	if err := Save(dc, base); err != nil {
		t.Fatalf("Save: %v", err)
	}
	mustExist(t, base+".png")
	mustNotExist(t, base+".pdf")
	mustNotExist(t, base+".eps")
	mustNotExist(t, base+".csv")
}

func TestSaveMultipleFormats(t *testing.T) {
	dc := testFigure(t)
	base := filepath.Join(t.TempDir(), "fig")

	err := Save(dc, base, WithFormats(FormatPNG, FormatPDF, FormatEPS))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	mustExist(t, base+".png")
	mustExist(t, base+".pdf")
	mustExist(t, base+".eps")
}

func TestSaveStripsExtension(t *testing.T) {
	dc := testFigure(t)
	dir := t.TempDir()

	if err := Save(dc, filepath.Join(dir, "fig.png"), WithFormats(FormatEPS)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	mustExist(t, filepath.Join(dir, "fig.eps"))
	mustNotExist(t, filepath.Join(dir, "fig.png"))
}

func TestSavePNGMagic(t *testing.T) {
	dc := testFigure(t)
	base := filepath.Join(t.TempDir(), "fig")
	if err := Save(dc, base); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(base + ".png")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("output is not a PNG file")
	}
}

func TestSavePDFMagic(t *testing.T) {
	dc := testFigure(t)
	base := filepath.Join(t.TempDir(), "fig")
	if err := Save(dc, base, WithFormats(FormatPDF)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(base + ".pdf")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Error("output is not a PDF file")
	}
}

func TestSaveEPSHeader(t *testing.T) {
	dc := testFigure(t)
	base := filepath.Join(t.TempDir(), "fig")
	if err := Save(dc, base, WithFormats(FormatEPS), WithDPI(96)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(base + ".eps")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	s := string(data)
	if !strings.HasPrefix(s, "%!PS-Adobe-3.0 EPSF-3.0") {
		t.Error("missing EPS header")
	}
	// 80 px at 96 dpi = 60 pt, 60 px = 45 pt.
	if !strings.Contains(s, "%%BoundingBox: 0 0 60 45") {
		t.Error("missing or wrong bounding box")
	}
}

func TestSaveWithData(t *testing.T) {
	dc := testFigure(t)
	base := filepath.Join(t.TempDir(), "fig")

	header := []string{"year", "value"}
	rows := [][]string{{"2023", "1.5"}, {"2024", "2.5"}}
	if err := Save(dc, base, WithData(header, rows)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(base + ".csv")
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer func() { _ = f.Close() }()

	got, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	want := [][]string{{"year", "value"}, {"2023", "1.5"}, {"2024", "2.5"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveKeepsEarlierFilesOnFailure(t *testing.T) {
	dc := testFigure(t)
	dir := t.TempDir()
	base := filepath.Join(dir, "fig")

	// Block the PDF output with a directory of the same name, so the
	// second format fails after the PNG has been written.
	if err := os.Mkdir(base+".pdf", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	err := Save(dc, base, WithFormats(FormatPNG, FormatPDF))
	if err == nil {
		t.Fatal("Save succeeded with an unwritable pdf path")
	}
	if !strings.Contains(err.Error(), ".pdf") {
		t.Errorf("error does not name the failing file: %v", err)
	}
	mustExist(t, base+".png")
}

func TestSaveNoFormats(t *testing.T) {
	dc := testFigure(t)
	err := Save(dc, filepath.Join(t.TempDir(), "fig"), WithFormats())
	if !errors.Is(err, ErrNoFormats) {
		t.Errorf("error = %v, want ErrNoFormats", err)
	}
}

func TestSaveInvalidDPI(t *testing.T) {
	dc := testFigure(t)
	err := Save(dc, filepath.Join(t.TempDir(), "fig"), WithDPI(0))
	if err == nil {
		t.Error("zero dpi accepted")
	}
}

func TestSaveNilContext(t *testing.T) {
	if err := Save(nil, "fig"); err == nil {
		t.Error("nil context accepted")
	}
}

func TestSaveDeduplicatesFormats(t *testing.T) {
	got, err := normalizeFormats([]Format{FormatPNG, FormatEPS, FormatPNG})
	if err != nil {
		t.Fatalf("normalizeFormats: %v", err)
	}
	want := []Format{FormatPNG, FormatEPS}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "png", want: FormatPNG},
		{in: "PDF", want: FormatPDF},
		{in: ".eps", want: FormatEPS},
		{in: " png ", want: FormatPNG},
		{in: "svg", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	if FormatPNG.String() != "png" || FormatPDF.String() != "pdf" || FormatEPS.String() != "eps" {
		t.Error("Format.String() names wrong")
	}
}

func mustExist(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s: %v", path, err)
		return
	}
	if info.Size() == 0 {
		t.Errorf("file %s is empty", path)
	}
}

func mustNotExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("unexpected file %s", path)
	}
}
