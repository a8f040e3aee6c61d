package detect

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
	"gorgonia.org/tensor"

	"github.com/ocr-ai/go-scenetext/images"
)

// DecodeProbabilityMap turns the network's probability map into oriented
// text boxes in model-input coordinate space.
//
// The map is binarized at BinaryThreshold, connected regions are extracted
// as contours, each candidate is scored by the mean probability over its
// bounding region and dropped below PolygonThreshold, and the surviving
// regions are unclipped: the minimum-area rectangle of the contour is grown
// outward by area*UnclipRatio/perimeter to undo the label shrink DB models
// are trained with.
//
// Arguments:
//   - probs: Probability map as a (H, W) float32 tensor.
//   - cfg: Decoding thresholds and limits.
//
// Returns:
//   - Result: At most cfg.MaxCandidates boxes with parallel scores, in
//     contour extraction order.
//   - error: An error if the map shape or backing is unusable.
func DecodeProbabilityMap(probs *tensor.Dense, cfg Config) (Result, error) {
	shape := probs.Shape()
	if len(shape) != 2 {
		return Result{}, errors.Errorf("probability map must be 2-dimensional, got shape %v", shape)
	}
	height, width := shape[0], shape[1]

	data, ok := probs.Data().([]float32)
	if !ok || len(data) != height*width {
		return Result{}, errors.Errorf("probability map backing must be %d float32 values", height*width)
	}

	bin := make([]byte, len(data))
	for i, v := range data {
		if v > cfg.BinaryThreshold {
			bin[i] = 255
		}
	}
	binMat, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8U, bin)
	if err != nil {
		return Result{}, errors.Wrap(err, "build binary map")
	}
	defer binMat.Close()

	contours := gocv.FindContours(binMat, gocv.RetrievalList, gocv.ChainApproxSimple)
	defer contours.Close()

	candidates := contours.Size()
	if cfg.MaxCandidates > 0 && candidates > cfg.MaxCandidates {
		candidates = cfg.MaxCandidates
	}

	var res Result
	for i := 0; i < candidates; i++ {
		contour := contours.At(i)

		score := regionScore(data, width, height, contour.ToPoints())
		if score < cfg.PolygonThreshold {
			continue
		}

		perimeter := gocv.ArcLength(contour, true)
		if perimeter <= 0 {
			continue
		}
		area := gocv.ContourArea(contour)
		distance := float32(area * cfg.UnclipRatio / perimeter)

		rect := gocv.MinAreaRect(contour)
		res.Boxes = append(res.Boxes, expandedCorners(rect, distance))
		res.Scores = append(res.Scores, score)
	}
	return res, nil
}

// regionScore is the mean probability over the axis-aligned bounding box
// of the contour, clipped to the map. This is the fast scoring mode; it
// over-counts background for strongly rotated regions but ranks candidates
// the same way in practice.
func regionScore(data []float32, width, height int, contour []image.Point) float32 {
	if len(contour) == 0 {
		return 0
	}
	minX, minY := width-1, height-1
	maxX, maxY := 0, 0
	for _, p := range contour {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, width-1)
	maxY = min(maxY, height-1)
	if minX > maxX || minY > maxY {
		return 0
	}

	var sum float32
	for y := minY; y <= maxY; y++ {
		row := data[y*width:]
		for x := minX; x <= maxX; x++ {
			sum += row[x]
		}
	}
	return sum / float32((maxX-minX+1)*(maxY-minY+1))
}

// expandedCorners derives the 4 corners of a rotated rectangle grown
// outward by distance on every side. Offsetting each edge of a rectangle
// by d and intersecting the offset edges is exactly the same rectangle
// with both extents enlarged by 2d, so the corners can be recomputed from
// center, size and angle directly.
func expandedCorners(rect gocv.RotatedRect, distance float32) images.Quad {
	halfW := float32(rect.Width)/2 + distance
	halfH := float32(rect.Height)/2 + distance
	cx := float32(rect.Center.X)
	cy := float32(rect.Center.Y)

	theta := float32(rect.Angle) * math32.Pi / 180
	cosT := math32.Cos(theta)
	sinT := math32.Sin(theta)

	local := [4]images.Point{
		{X: -halfW, Y: -halfH},
		{X: halfW, Y: -halfH},
		{X: halfW, Y: halfH},
		{X: -halfW, Y: halfH},
	}

	var quad images.Quad
	for i, p := range local {
		quad[i] = images.Point{
			X: cx + p.X*cosT - p.Y*sinT,
			Y: cy + p.X*sinT + p.Y*cosT,
		}
	}
	return quad
}
