package arpctheme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// Logo placement errors.
var (
	// ErrUnknownPosition is returned for a named position outside the
	// supported set ("top left", "top right", "bottom left",
	// "bottom right", "center").
	ErrUnknownPosition = errors.New("arpctheme: unknown logo position")

	// ErrPositionRange is returned for numeric coordinates outside
	// [-0.5, 1.5].
	ErrPositionRange = errors.New("arpctheme: numeric logo position out of range")

	// ErrBadScale is returned for a logo scale outside (0, 1].
	ErrBadScale = errors.New("arpctheme: logo scale out of range")
)

// Position specifies where a logo is placed on a canvas: either one of the
// named corner/center anchors, or a numeric fractional coordinate.
// The zero value is not valid and is rejected by [LogoBox]; use the Pos
// constants, [At] or [ParsePosition].
type Position struct {
	name    string
	numeric bool
	x, y    float64
}

// Named anchor positions. These are inset from the canvas edge and always
// stay fully inside the canvas.
var (
	PosTopLeft     = Position{name: "top left"}
	PosTopRight    = Position{name: "top right"}
	PosBottomLeft  = Position{name: "bottom left"}
	PosBottomRight = Position{name: "bottom right"}
	PosCenter      = Position{name: "center"}
)

// At returns a numeric position: the logo center is placed at
// (x*canvasWidth, y*canvasHeight). Coordinates must be within [-0.5, 1.5];
// values outside [0, 1] address the figure margins and are deliberately
// not clamped to the canvas.
func At(x, y float64) Position {
	return Position{numeric: true, x: x, y: y}
}

// ParsePosition converts a position string to a Position.
// Accepted values are the named anchors, case-insensitive.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top left":
		return PosTopLeft, nil
	case "top right":
		return PosTopRight, nil
	case "bottom left":
		return PosBottomLeft, nil
	case "bottom right":
		return PosBottomRight, nil
	case "center":
		return PosCenter, nil
	}
	return Position{}, fmt.Errorf("%w: %q", ErrUnknownPosition, s)
}

// String returns the anchor name, or the numeric coordinates for an [At]
// position.
func (p Position) String() string {
	if p.name != "" {
		return p.name
	}
	if !p.numeric {
		return "unset"
	}
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}

// named reports whether p is one of the named anchors.
func (p Position) named() bool { return p.name != "" }

// Box is an axis-aligned rectangle on the canvas, in pixels.
// X, Y is the top-left corner.
type Box struct {
	X, Y, W, H float64
}

// anchorPad is the inset of named anchors from the canvas edge, as a
// fraction of the smaller canvas dimension.
const anchorPad = 0.02

// placeholderAspect is the width:height ratio of the placeholder drawn
// when the logo asset cannot be loaded.
const placeholderAspect = 2.0

// LogoBox computes the bounding box for a logo of imgW×imgH pixels drawn
// on a canvasW×canvasH canvas. The box height is scale times the canvas
// height and the width preserves the image aspect ratio.
//
// Named positions are inset from the edge and clamped fully inside the
// canvas. Numeric positions center the box at the fractional coordinate
// and are not clamped, so the logo may extend into the margins or off the
// canvas.
func LogoBox(canvasW, canvasH, imgW, imgH int, pos Position, scale float64) (Box, error) {
	if canvasW <= 0 || canvasH <= 0 {
		return Box{}, fmt.Errorf("arpctheme: invalid canvas size %dx%d", canvasW, canvasH)
	}
	if imgW <= 0 || imgH <= 0 {
		return Box{}, fmt.Errorf("arpctheme: invalid logo size %dx%d", imgW, imgH)
	}
	if scale <= 0 || scale > 1 {
		return Box{}, fmt.Errorf("%w: %g (want 0 < scale <= 1)", ErrBadScale, scale)
	}

	cw := float64(canvasW)
	ch := float64(canvasH)
	h := scale * ch
	w := h * float64(imgW) / float64(imgH)

	if !pos.named() {
		if !pos.numeric {
			return Box{}, fmt.Errorf("%w: position not set", ErrUnknownPosition)
		}
		if pos.x < -0.5 || pos.x > 1.5 || pos.y < -0.5 || pos.y > 1.5 {
			return Box{}, fmt.Errorf("%w: (%g, %g) (want [-0.5, 1.5])",
				ErrPositionRange, pos.x, pos.y)
		}
		return Box{
			X: pos.x*cw - w/2,
			Y: pos.y*ch - h/2,
			W: w,
			H: h,
		}, nil
	}

	pad := anchorPad * min(cw, ch)
	var x, y float64
	switch pos.name {
	case "top left":
		x, y = pad, pad
	case "top right":
		x, y = cw-w-pad, pad
	case "bottom left":
		x, y = pad, ch-h-pad
	case "bottom right":
		x, y = cw-w-pad, ch-h-pad
	case "center":
		x, y = (cw-w)/2, (ch-h)/2
	default:
		return Box{}, fmt.Errorf("%w: %q", ErrUnknownPosition, pos.name)
	}

	// Clamp named anchors inside the canvas. Lower bound wins when the
	// box is larger than the canvas.
	x = clampBox(x, cw-w)
	y = clampBox(y, ch-h)
	return Box{X: x, Y: y, W: w, H: h}, nil
}

func clampBox(v, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < 0 {
		v = 0
	}
	return v
}

// DrawLogo draws the logo image at path onto the context. The box is
// computed by [LogoBox] from the image dimensions, the position and the
// scale (logo height = scale × canvas height).
//
// A missing or undecodable asset is not an error: a gray placeholder
// rectangle is drawn in its place and a warning is logged. Invalid
// positions or scales are errors.
func DrawLogo(dc *gg.Context, path string, pos Position, scale float64) error {
	img, err := gg.LoadImage(path)
	if err != nil {
		Logger().Warn("arpctheme: logo asset unavailable, drawing placeholder",
			"path", path, "error", err)
		return drawLogoPlaceholder(dc, pos, scale)
	}

	imgW, imgH := img.Bounds()
	box, err := LogoBox(dc.Width(), dc.Height(), imgW, imgH, pos, scale)
	if err != nil {
		return err
	}

	dc.DrawImageEx(img, gg.DrawImageOptions{
		X:             box.X,
		Y:             box.Y,
		DstWidth:      box.W,
		DstHeight:     box.H,
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// drawLogoPlaceholder draws a flat rectangle with a border where the logo
// would have been, using a fixed landscape aspect ratio.
func drawLogoPlaceholder(dc *gg.Context, pos Position, scale float64) error {
	const aspectNum = int(placeholderAspect * 100)
	box, err := LogoBox(dc.Width(), dc.Height(), aspectNum, 100, pos, scale)
	if err != nil {
		return err
	}

	dc.SetColor(mustColor("lightgray").Color())
	dc.DrawRectangle(box.X, box.Y, box.W, box.H)
	_ = dc.Fill()

	dc.SetColor(mustColor("gray").Color())
	dc.SetLineWidth(1)
	dc.DrawRectangle(box.X, box.Y, box.W, box.H)
	_ = dc.Stroke()
	return nil
}
