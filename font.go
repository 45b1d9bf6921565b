package arpctheme

import (
	"errors"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontSet holds the regular and bold font sources used by a theme.
// A FontSet is heavyweight; create one and share it across charts.
//
// FontSet is safe for concurrent use.
type FontSet struct {
	regular *text.FontSource
	bold    *text.FontSource

	// ownsRegular/ownsBold report whether the sources were loaded from
	// disk by this set. Embedded fallback sources are shared package-wide
	// and must not be closed.
	ownsRegular bool
	ownsBold    bool
}

// Embedded fallback fonts, parsed once on first use.
var (
	embeddedOnce    sync.Once
	embeddedRegular *text.FontSource
	embeddedBold    *text.FontSource
)

func embeddedFonts() (*text.FontSource, *text.FontSource) {
	embeddedOnce.Do(func() {
		var err error
		embeddedRegular, err = text.NewFontSource(goregular.TTF)
		if err != nil {
			panic("arpctheme: parse embedded regular font: " + err.Error())
		}
		embeddedBold, err = text.NewFontSource(gobold.TTF)
		if err != nil {
			panic("arpctheme: parse embedded bold font: " + err.Error())
		}
	})
	return embeddedRegular, embeddedBold
}

// DefaultFonts returns a FontSet backed by the embedded Go fonts.
// It never fails and never touches the filesystem.
func DefaultFonts() *FontSet {
	reg, bold := embeddedFonts()
	return &FontSet{regular: reg, bold: bold}
}

// LoadFonts loads the theme fonts from TTF or OTF files on disk.
// Each slot that cannot be loaded (empty path, missing file, parse error)
// falls back to the corresponding embedded Go font with a warning log.
// LoadFonts never fails: the returned set is always usable.
func LoadFonts(regularPath, boldPath string) *FontSet {
	fs := DefaultFonts()

	if regularPath != "" {
		src, err := text.NewFontSourceFromFile(regularPath)
		if err != nil {
			Logger().Warn("arpctheme: regular font unavailable, using embedded fallback",
				"path", regularPath, "error", err)
		} else {
			fs.regular = src
			fs.ownsRegular = true
		}
	}
	if boldPath != "" {
		src, err := text.NewFontSourceFromFile(boldPath)
		if err != nil {
			Logger().Warn("arpctheme: bold font unavailable, using embedded fallback",
				"path", boldPath, "error", err)
		} else {
			fs.bold = src
			fs.ownsBold = true
		}
	}
	return fs
}

// Regular returns the regular face at the given size in points.
func (f *FontSet) Regular(size float64) text.Face {
	return f.regular.Face(size)
}

// Bold returns the bold face at the given size in points.
func (f *FontSet) Bold(size float64) text.Face {
	return f.bold.Face(size)
}

// Close releases font sources loaded from disk by this set.
// Shared embedded sources are left open. Close is a no-op on an
// embedded-only set.
func (f *FontSet) Close() error {
	var errRegular, errBold error
	if f.ownsRegular {
		errRegular = f.regular.Close()
		f.ownsRegular = false
	}
	if f.ownsBold {
		errBold = f.bold.Close()
		f.ownsBold = false
	}
	return errors.Join(errRegular, errBold)
}
