package images

import (
	"image"

	"gocv.io/x/gocv"
)

// ResizeFrame resizes a frame to the given size with bilinear
// interpolation, matching what the model was exported with. The source
// Mat is left untouched; the caller owns the returned Mat.
func ResizeFrame(src gocv.Mat, width, height int) gocv.Mat {
	dst := gocv.NewMat()
	gocv.Resize(src, &dst, image.Pt(width, height), 0, 0, gocv.InterpolationLinear)
	return dst
}
