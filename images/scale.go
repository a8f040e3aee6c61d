package images

// ScaleFactors maps model-input space back to original-image space.
// Width and height scale independently, so the aspect ratio of a detection
// is not preserved when the original and model aspect ratios differ.
type ScaleFactors struct {
	Width  float64
	Height float64
}

// NewScaleFactors computes per-axis factors from the original frame size
// and the model input size.
//
// Arguments:
//   - origWidth, origHeight: Dimensions of the unresized source frame.
//   - modelWidth, modelHeight: Dimensions the frame is resized to before
//     inference.
//
// Returns:
//   - ScaleFactors: (origWidth/modelWidth, origHeight/modelHeight).
func NewScaleFactors(origWidth, origHeight, modelWidth, modelHeight int) ScaleFactors {
	return ScaleFactors{
		Width:  float64(origWidth) / float64(modelWidth),
		Height: float64(origHeight) / float64(modelHeight),
	}
}

// Rescale maps every corner of every quad from model-input space to
// original-image space. It returns a new slice with the same length and
// ordering as the input; the input quads are not mutated. Coordinates are
// multiplied through without clamping, out-of-range input passes through
// scaled like any other value.
func Rescale(boxes []Quad, scale ScaleFactors) []Quad {
	if boxes == nil {
		return nil
	}
	out := make([]Quad, len(boxes))
	for i, q := range boxes {
		for j, p := range q {
			out[i][j] = Point{
				X: p.X * float32(scale.Width),
				Y: p.Y * float32(scale.Height),
			}
		}
	}
	return out
}
