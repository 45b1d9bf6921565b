// Command arpcdemo renders a sample branded bar chart and exports it.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/gogpu/gg"

	"github.com/dylan-turner25/arpctheme"
)

func main() {
	var (
		width    = flag.Int("width", 1200, "figure width in pixels")
		height   = flag.Int("height", 800, "figure height in pixels")
		output   = flag.String("output", "arpcdemo", "output base filename (extension is stripped)")
		formats  = flag.String("formats", "png", "comma-separated output formats: png, pdf, eps")
		logoPath = flag.String("logo", "", "logo image file (PNG/JPEG); placeholder if missing")
		fontReg  = flag.String("font", "", "regular font file (TTF/OTF); embedded fallback if missing")
		fontBold = flag.String("font-bold", "", "bold font file (TTF/OTF); embedded fallback if missing")
		withData = flag.Bool("data", false, "also write the plotted values as CSV")
	)
	flag.Parse()

	arpctheme.SetLogger(slog.Default())

	fmts, err := parseFormats(*formats)
	if err != nil {
		log.Fatalf("Bad -formats: %v", err)
	}

	fonts := arpctheme.LoadFonts(*fontReg, *fontBold)
	defer func() { _ = fonts.Close() }()

	th := arpctheme.New(arpctheme.WithFonts(fonts))

	dc := gg.NewContext(*width, *height)
	drawChart(dc, th)

	if *logoPath != "" {
		if err := arpctheme.DrawLogo(dc, *logoPath, arpctheme.PosBottomRight, 0.08); err != nil {
			log.Fatalf("Failed to place logo: %v", err)
		}
	}

	opts := []arpctheme.SaveOption{arpctheme.WithFormats(fmts...)}
	if *withData {
		opts = append(opts, arpctheme.WithData(
			[]string{"year", "value"},
			demoRows(),
		))
	}
	if err := arpctheme.Save(dc, *output, opts...); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Figure saved as %s.{%s} (%dx%d)\n", *output, *formats, *width, *height)
}

func parseFormats(s string) ([]arpctheme.Format, error) {
	var out []arpctheme.Format
	for _, part := range strings.Split(s, ",") {
		f, err := arpctheme.ParseFormat(part)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// demoValues is the series plotted by the demo chart.
var demoValues = []struct {
	year  int
	value float64
}{
	{2019, 42}, {2020, 55}, {2021, 38}, {2022, 71}, {2023, 64}, {2024, 80},
}

func demoRows() [][]string {
	rows := make([][]string, len(demoValues))
	for i, v := range demoValues {
		rows[i] = []string{fmt.Sprint(v.year), fmt.Sprint(v.value)}
	}
	return rows
}

func drawChart(dc *gg.Context, th arpctheme.Theme) {
	th.Apply(dc)

	x, y, w, h := th.PlotArea(dc)

	// Leave headroom for the titles.
	const headroom = 90
	y += headroom
	h -= headroom

	th.Grid(dc, x, y, w, h, 0, 4)

	// Bars, one palette color per year.
	cols, err := arpctheme.Palette(len(demoValues))
	if err != nil {
		log.Fatalf("Palette: %v", err)
	}
	maxVal := 0.0
	for _, v := range demoValues {
		if v.value > maxVal {
			maxVal = v.value
		}
	}
	slot := w / float64(len(demoValues))
	barW := slot * 0.7
	for i, v := range demoValues {
		barH := h * v.value / maxVal
		bx := x + slot*float64(i) + (slot-barW)/2
		dc.SetColor(cols[i].Color())
		dc.DrawRectangle(bx, y+h-barH, barW, barH)
		_ = dc.Fill()
	}

	// Axis labels.
	dc.SetFont(th.AxisTextFace())
	dc.SetColor(th.SubtleText.Color())
	for i, v := range demoValues {
		cx := x + slot*float64(i) + slot/2
		dc.DrawStringAnchored(fmt.Sprint(v.year), cx, y+h+18, 0.5, 0.5)
	}

	// Title block.
	dc.SetFont(th.TitleFace())
	dc.SetColor(th.TextColor.Color())
	dc.DrawString("Farm program payments", x, th.Margin.Top+th.TitleSize())

	dc.SetFont(th.SubtitleFace())
	dc.SetColor(th.SubtleText.Color())
	dc.DrawString("Billion dollars, 2019-2024", x, th.Margin.Top+th.TitleSize()+th.SubtitleSize()+8)

	dc.SetFont(th.CaptionFace())
	dc.DrawString("Source: demo data", x, float64(dc.Height())-8)
}
