// Package images - Frame geometry and coordinate-space helpers.
package images

import (
	"fmt"
	"image"
)

// Point is a 2D point in pixel space. Coordinates are kept as float32
// because detection corners carry sub-pixel precision until they are
// rasterized for drawing.
type Point struct {
	X, Y float32
}

// Quad is an oriented quadrilateral given by its 4 corners in drawing
// order. Detections are quads rather than axis-aligned rectangles since
// text regions are usually rotated.
type Quad [4]Point

// ToImagePoints converts the quad corners to integral image points,
// truncating toward zero the same way OpenCV does when rasterizing.
func (q Quad) ToImagePoints() []image.Point {
	pts := make([]image.Point, 0, len(q))
	for _, p := range q {
		pts = append(pts, image.Pt(int(p.X), int(p.Y)))
	}
	return pts
}

func (q Quad) String() string {
	return fmt.Sprintf("[%.0f %.0f] [%.0f %.0f] [%.0f %.0f] [%.0f %.0f]",
		q[0].X, q[0].Y, q[1].X, q[1].Y, q[2].X, q[2].Y, q[3].X, q[3].Y)
}
