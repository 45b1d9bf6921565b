// Package eps writes raster images as Encapsulated PostScript.
//
// The output is a minimal EPSF-3.0 document: a DSC header with the
// bounding box, followed by the pixels as a Level 2 ASCII85-encoded RGB
// colorimage. Transparency is composited over white, since PostScript has
// no alpha channel.
package eps

import (
	"bufio"
	"encoding/ascii85"
	"fmt"
	"image"
	"io"
)

// Encode writes img to w as an EPS document of widthPt×heightPt points.
func Encode(w io.Writer, img image.Image, widthPt, heightPt float64) error {
	if img == nil {
		return fmt.Errorf("eps: nil image")
	}
	b := img.Bounds()
	pxW, pxH := b.Dx(), b.Dy()
	if pxW <= 0 || pxH <= 0 {
		return fmt.Errorf("eps: empty image %dx%d", pxW, pxH)
	}
	if widthPt <= 0 || heightPt <= 0 {
		return fmt.Errorf("eps: invalid page size %gx%g pt", widthPt, heightPt)
	}

	bw := bufio.NewWriter(w)

	bw.WriteString("%!PS-Adobe-3.0 EPSF-3.0\n")
	fmt.Fprintf(bw, "%%%%BoundingBox: 0 0 %d %d\n", ceilInt(widthPt), ceilInt(heightPt))
	fmt.Fprintf(bw, "%%%%HiResBoundingBox: 0 0 %f %f\n", widthPt, heightPt)
	bw.WriteString("%%LanguageLevel: 2\n")
	bw.WriteString("%%Pages: 1\n")
	bw.WriteString("%%EndComments\n")
	bw.WriteString("gsave\n")
	fmt.Fprintf(bw, "%f %f scale\n", widthPt, heightPt)
	// The image matrix flips y so that raster row 0 lands at the top.
	fmt.Fprintf(bw, "%d %d 8 [%d 0 0 %d 0 %d]\n", pxW, pxH, pxW, -pxH, pxH)
	bw.WriteString("currentfile /ASCII85Decode filter\n")
	bw.WriteString("false 3 colorimage\n")

	if err := writePixels(bw, img); err != nil {
		return err
	}

	bw.WriteString("grestore\n")
	bw.WriteString("showpage\n")
	bw.WriteString("%%EOF\n")
	return bw.Flush()
}

// writePixels streams the RGB samples through an ASCII85 encoder, then
// emits the PostScript end-of-data marker.
func writePixels(w *bufio.Writer, img image.Image) error {
	enc := ascii85.NewEncoder(&lineWrapper{w: w})
	b := img.Bounds()

	row := make([]byte, 0, b.Dx()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row = row[:0]
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl := overWhite(img.At(x, y).RGBA())
			row = append(row, r, g, bl)
		}
		if _, err := enc.Write(row); err != nil {
			return err
		}
	}
	if err := enc.Close(); err != nil {
		return err
	}
	// ASCII85Decode end-of-data marker.
	if _, err := w.WriteString("~>\n"); err != nil {
		return err
	}
	return nil
}

// overWhite composites a premultiplied 16-bit RGBA sample over a white
// background and returns 8-bit RGB.
func overWhite(r, g, b, a uint32) (uint8, uint8, uint8) {
	if a == 0xffff {
		return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
	}
	inv := 0xffff - a
	return sat8(r + inv), sat8(g + inv), sat8(b + inv)
}

func sat8(v uint32) uint8 {
	if v > 0xffff {
		v = 0xffff
	}
	return uint8(v >> 8)
}

// lineWrapper breaks the ASCII85 stream into lines no longer than 75
// characters, as the DSC requires for document data.
type lineWrapper struct {
	w   *bufio.Writer
	col int
}

func (lw *lineWrapper) Write(p []byte) (int, error) {
	const maxCol = 75
	n := 0
	for len(p) > 0 {
		room := maxCol - lw.col
		if room == 0 {
			if err := lw.w.WriteByte('\n'); err != nil {
				return n, err
			}
			lw.col = 0
			room = maxCol
		}
		chunk := p
		if len(chunk) > room {
			chunk = chunk[:room]
		}
		m, err := lw.w.Write(chunk)
		n += m
		lw.col += m
		if err != nil {
			return n, err
		}
		p = p[m:]
	}
	return n, nil
}

func ceilInt(v float64) int {
	i := int(v)
	if float64(i) < v {
		i++
	}
	return i
}
