// Package render - Detection overlay drawing.
package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ocr-ai/go-scenetext/images"
)

// Style controls how detections are drawn.
type Style struct {
	BoxColor  color.RGBA
	TextColor color.RGBA
	// Closed draws each quad as a closed polyline.
	Closed    bool
	Thickness int
}

// DefaultStyle matches the reference visualization: green boxes, red text,
// closed quads, 2px lines.
func DefaultStyle() Style {
	return Style{
		BoxColor:  color.RGBA{G: 255, A: 255},
		TextColor: color.RGBA{R: 255, A: 255},
		Closed:    true,
		Thickness: 2,
	}
}

// fpsOrigin is where the FPS readout is anchored.
var fpsOrigin = image.Pt(0, 15)

// Render draws the scaled detection quads, and optionally an FPS readout,
// onto a clone of the frame. The input frame is never written to. Boxes
// are drawn in slice order, so later boxes paint over earlier ones where
// they overlap. The caller owns the returned Mat.
func Render(frame gocv.Mat, boxes []images.Quad, style Style, fps *float64) gocv.Mat {
	out := frame.Clone()

	if fps != nil {
		gocv.PutText(&out, fmt.Sprintf("FPS: %.2f", *fps), fpsOrigin,
			gocv.FontHersheySimplex, 0.5, style.TextColor, 1)
	}

	if len(boxes) == 0 {
		return out
	}

	pts := make([][]image.Point, 0, len(boxes))
	for _, q := range boxes {
		pts = append(pts, q.ToImagePoints())
	}
	pv := gocv.NewPointsVectorFromPoints(pts)
	defer pv.Close()
	gocv.Polylines(&out, pv, style.Closed, style.BoxColor, style.Thickness)

	return out
}
