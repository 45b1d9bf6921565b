package arpctheme

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Margin describes the whitespace around the plotting area, in pixels.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Theme bundles the visual style settings of the house look: fonts, text
// sizes, colors, margins and grid settings. The zero value is not useful;
// start from [Default] or [New].
//
// Text sizes are derived from BaseSize via relative scale factors, so a
// single WithBaseSize override rescales the whole typography.
type Theme struct {
	// BaseSize is the body text size in points. All other sizes are
	// BaseSize multiplied by the corresponding scale factor.
	BaseSize float64

	// Relative scale factors.
	TitleScale     float64
	SubtitleScale  float64
	CaptionScale   float64
	AxisTitleScale float64
	AxisTextScale  float64
	LegendScale    float64

	// Colors.
	TextColor  gg.RGBA // titles and axis titles
	SubtleText gg.RGBA // subtitles, captions, axis text
	Background gg.RGBA // panel and figure background
	GridColor  gg.RGBA // panel grid lines

	// Margin is the whitespace around the plotting area.
	Margin Margin

	// GridX and GridY toggle vertical and horizontal grid lines.
	GridX bool
	GridY bool

	// Fonts used for all text. Nil means the embedded Go fonts.
	Fonts *FontSet
}

// Default returns the preset house theme.
func Default() Theme {
	return Theme{
		BaseSize:       12,
		TitleScale:     1.6,
		SubtitleScale:  1.2,
		CaptionScale:   0.8,
		AxisTitleScale: 1.0,
		AxisTextScale:  0.9,
		LegendScale:    0.9,
		TextColor:      mustColor("darkblue"),
		SubtleText:     mustColor("gray"),
		Background:     gg.White,
		GridColor:      mustColor("lightgray"),
		Margin:         Margin{Top: 20, Right: 20, Bottom: 20, Left: 20},
		GridX:          false,
		GridY:          true,
	}
}

// Option overrides a single setting of the default theme.
type Option func(*Theme)

// WithBaseSize sets the body text size in points.
func WithBaseSize(size float64) Option {
	return func(t *Theme) { t.BaseSize = size }
}

// WithTitleScale sets the title size as a factor of the base size.
func WithTitleScale(s float64) Option {
	return func(t *Theme) { t.TitleScale = s }
}

// WithSubtitleScale sets the subtitle size as a factor of the base size.
func WithSubtitleScale(s float64) Option {
	return func(t *Theme) { t.SubtitleScale = s }
}

// WithCaptionScale sets the caption size as a factor of the base size.
func WithCaptionScale(s float64) Option {
	return func(t *Theme) { t.CaptionScale = s }
}

// WithAxisTitleScale sets the axis title size as a factor of the base size.
func WithAxisTitleScale(s float64) Option {
	return func(t *Theme) { t.AxisTitleScale = s }
}

// WithAxisTextScale sets the axis text size as a factor of the base size.
func WithAxisTextScale(s float64) Option {
	return func(t *Theme) { t.AxisTextScale = s }
}

// WithLegendScale sets the legend text size as a factor of the base size.
func WithLegendScale(s float64) Option {
	return func(t *Theme) { t.LegendScale = s }
}

// WithFonts sets the font set used for all text.
func WithFonts(fonts *FontSet) Option {
	return func(t *Theme) { t.Fonts = fonts }
}

// WithTextColor sets the color of titles and axis titles.
func WithTextColor(c gg.RGBA) Option {
	return func(t *Theme) { t.TextColor = c }
}

// WithSubtleText sets the color of subtitles, captions and axis text.
func WithSubtleText(c gg.RGBA) Option {
	return func(t *Theme) { t.SubtleText = c }
}

// WithBackground sets the figure background color.
func WithBackground(c gg.RGBA) Option {
	return func(t *Theme) { t.Background = c }
}

// WithGridColor sets the panel grid line color.
func WithGridColor(c gg.RGBA) Option {
	return func(t *Theme) { t.GridColor = c }
}

// WithMargin sets the whitespace around the plotting area.
func WithMargin(m Margin) Option {
	return func(t *Theme) { t.Margin = m }
}

// WithGrid toggles vertical (x) and horizontal (y) grid lines.
func WithGrid(x, y bool) Option {
	return func(t *Theme) {
		t.GridX = x
		t.GridY = y
	}
}

// New returns the default theme with the given overrides merged in.
// Out-of-range values (non-positive sizes or scale factors) are ignored
// with a warning log rather than failing the whole theme.
func New(opts ...Option) Theme {
	t := Default()
	for _, opt := range opts {
		opt(&t)
	}
	t.sanitize()
	return t
}

// sanitize resets out-of-range numeric settings to their defaults.
func (t *Theme) sanitize() {
	def := Default()
	if t.BaseSize <= 0 {
		Logger().Warn("arpctheme: ignoring non-positive base size",
			"got", t.BaseSize, "using", def.BaseSize)
		t.BaseSize = def.BaseSize
	}
	scales := []struct {
		name string
		p    *float64
		def  float64
	}{
		{"title", &t.TitleScale, def.TitleScale},
		{"subtitle", &t.SubtitleScale, def.SubtitleScale},
		{"caption", &t.CaptionScale, def.CaptionScale},
		{"axis title", &t.AxisTitleScale, def.AxisTitleScale},
		{"axis text", &t.AxisTextScale, def.AxisTextScale},
		{"legend", &t.LegendScale, def.LegendScale},
	}
	for _, s := range scales {
		if *s.p <= 0 {
			Logger().Warn("arpctheme: ignoring non-positive scale factor",
				"scale", s.name, "got", *s.p, "using", s.def)
			*s.p = s.def
		}
	}
}

// Derived text sizes in points.

func (t Theme) TitleSize() float64     { return t.BaseSize * t.TitleScale }
func (t Theme) SubtitleSize() float64  { return t.BaseSize * t.SubtitleScale }
func (t Theme) CaptionSize() float64   { return t.BaseSize * t.CaptionScale }
func (t Theme) AxisTitleSize() float64 { return t.BaseSize * t.AxisTitleScale }
func (t Theme) AxisTextSize() float64  { return t.BaseSize * t.AxisTextScale }
func (t Theme) LegendSize() float64    { return t.BaseSize * t.LegendScale }

// fonts returns the theme's font set, falling back to the embedded fonts.
func (t Theme) fonts() *FontSet {
	if t.Fonts != nil {
		return t.Fonts
	}
	return DefaultFonts()
}

// Faces at the derived sizes. Titles use the bold face.

func (t Theme) TitleFace() text.Face     { return t.fonts().Bold(t.TitleSize()) }
func (t Theme) SubtitleFace() text.Face  { return t.fonts().Regular(t.SubtitleSize()) }
func (t Theme) CaptionFace() text.Face   { return t.fonts().Regular(t.CaptionSize()) }
func (t Theme) AxisTitleFace() text.Face { return t.fonts().Bold(t.AxisTitleSize()) }
func (t Theme) AxisTextFace() text.Face  { return t.fonts().Regular(t.AxisTextSize()) }
func (t Theme) BodyFace() text.Face      { return t.fonts().Regular(t.BaseSize) }

// Apply paints the theme onto a drawing context: it clears the canvas with
// the background color and installs the body face and text color as the
// current drawing state.
func (t Theme) Apply(dc *gg.Context) {
	dc.ClearWithColor(t.Background)
	dc.SetFont(t.BodyFace())
	dc.SetColor(t.TextColor.Color())
}

// PlotArea returns the plotting rectangle of a canvas after removing the
// theme margins: x, y of the top-left corner, then width and height.
func (t Theme) PlotArea(dc *gg.Context) (x, y, w, h float64) {
	x = t.Margin.Left
	y = t.Margin.Top
	w = float64(dc.Width()) - t.Margin.Left - t.Margin.Right
	h = float64(dc.Height()) - t.Margin.Top - t.Margin.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return x, y, w, h
}

// Grid draws the panel grid into the rectangle (x, y, w, h) with xTicks
// vertical and yTicks horizontal divisions, honoring the GridX/GridY
// toggles and the grid color. Tick counts below 1 draw nothing for that
// direction. The grid color and line width stay set on the context.
func (t Theme) Grid(dc *gg.Context, x, y, w, h float64, xTicks, yTicks int) {
	dc.SetColor(t.GridColor.Color())
	dc.SetLineWidth(1)

	if t.GridX && xTicks >= 1 {
		for i := 0; i <= xTicks; i++ {
			gx := x + w*float64(i)/float64(xTicks)
			dc.DrawLine(gx, y, gx, y+h)
			_ = dc.Stroke()
		}
	}
	if t.GridY && yTicks >= 1 {
		for i := 0; i <= yTicks; i++ {
			gy := y + h*float64(i)/float64(yTicks)
			dc.DrawLine(x, gy, x+w, gy)
			_ = dc.Stroke()
		}
	}
}
