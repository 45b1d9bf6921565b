// Package arpctheme provides corporate branding for charts drawn with the
// gogpu/gg graphics library.
//
// # Overview
//
// arpctheme is a thin styling layer on top of github.com/gogpu/gg. It bundles
// the ARPC house style into four independent pieces: a preset visual theme
// (fonts, sizes, colors, margins), a fixed brand color palette for
// categorical encoding, a logo-overlay helper, and a multi-format figure
// exporter (PNG, PDF, EPS, plus an optional CSV data sidecar).
//
// # Quick Start
//
//	import (
//		"github.com/dylan-turner25/arpctheme"
//		"github.com/gogpu/gg"
//	)
//
//	// Create a drawing context and apply the house theme.
//	dc := gg.NewContext(1200, 800)
//	th := arpctheme.New(arpctheme.WithBaseSize(14))
//	th.Apply(dc)
//
//	// Color series with the brand palette.
//	cols, _ := arpctheme.Palette(3)
//
//	// ... draw the chart ...
//
//	// Stamp the logo and write the figure in several formats.
//	_ = arpctheme.DrawLogo(dc, "assets/logo.png", arpctheme.PosBottomRight, 0.08)
//	_ = arpctheme.Save(dc, "figure",
//		arpctheme.WithFormats(arpctheme.FormatPNG, arpctheme.FormatPDF))
//
// # Design
//
// Every exported function is stateless and synchronous: it configures a
// gg.Context, looks up static data, or writes files, and returns. Missing
// assets degrade instead of failing where the result is still usable (a
// missing logo file draws a placeholder, a missing font falls back to the
// embedded Go fonts); genuine argument errors are returned.
//
// By default the package produces no log output. Call [SetLogger] to see
// warnings about fallbacks.
package arpctheme
