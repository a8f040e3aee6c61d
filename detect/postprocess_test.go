package detect

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
	"gorgonia.org/tensor"
)

// probMap builds a zeroed (h, w) map with value set over the given rect.
func probMap(w, h int, region image.Rectangle, value float32) *tensor.Dense {
	data := make([]float32, w*h)
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			data[y*w+x] = value
		}
	}
	return tensor.New(tensor.WithShape(h, w), tensor.WithBacking(data))
}

func decodeConfig() Config {
	return Config{
		BinaryThreshold:  0.3,
		PolygonThreshold: 0.5,
		MaxCandidates:    200,
		UnclipRatio:      2.0,
	}
}

func TestDecodeProbabilityMapSingleRegion(t *testing.T) {
	probs := probMap(96, 96, image.Rect(20, 30, 60, 50), 0.9)

	res, err := DecodeProbabilityMap(probs, decodeConfig())

	require.NoError(t, err)
	require.Len(t, res.Boxes, 1)
	require.Len(t, res.Scores, 1)
	assert.InDelta(t, 0.9, float64(res.Scores[0]), 0.05)

	// The unclipped box must contain the seeded region.
	for _, p := range res.Boxes[0] {
		assert.GreaterOrEqual(t, p.X, float32(0))
		assert.GreaterOrEqual(t, p.Y, float32(0))
	}
	minX, maxX := res.Boxes[0][0].X, res.Boxes[0][0].X
	minY, maxY := res.Boxes[0][0].Y, res.Boxes[0][0].Y
	for _, p := range res.Boxes[0] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	assert.LessOrEqual(t, minX, float32(20))
	assert.LessOrEqual(t, minY, float32(30))
	assert.GreaterOrEqual(t, maxX, float32(59))
	assert.GreaterOrEqual(t, maxY, float32(49))
}

func TestDecodeProbabilityMapRejectsWeakRegions(t *testing.T) {
	// Above the binary threshold, below the polygon threshold.
	probs := probMap(96, 96, image.Rect(10, 10, 40, 30), 0.4)

	res, err := DecodeProbabilityMap(probs, decodeConfig())

	require.NoError(t, err)
	assert.Empty(t, res.Boxes)
	assert.Empty(t, res.Scores)
}

func TestDecodeProbabilityMapHonorsMaxCandidates(t *testing.T) {
	data := make([]float32, 96*96)
	probs := tensor.New(tensor.WithShape(96, 96), tensor.WithBacking(data))
	for _, region := range []image.Rectangle{
		image.Rect(5, 5, 25, 20),
		image.Rect(40, 40, 60, 55),
		image.Rect(5, 60, 25, 75),
	} {
		for y := region.Min.Y; y < region.Max.Y; y++ {
			for x := region.Min.X; x < region.Max.X; x++ {
				data[y*96+x] = 0.95
			}
		}
	}

	cfg := decodeConfig()
	cfg.MaxCandidates = 1
	res, err := DecodeProbabilityMap(probs, cfg)

	require.NoError(t, err)
	assert.Len(t, res.Boxes, 1, "candidate cap must apply")
	assert.Len(t, res.Scores, 1)
}

func TestDecodeProbabilityMapEmpty(t *testing.T) {
	probs := tensor.New(tensor.WithShape(64, 64), tensor.WithBacking(make([]float32, 64*64)))

	res, err := DecodeProbabilityMap(probs, decodeConfig())

	require.NoError(t, err)
	assert.Empty(t, res.Boxes)
}

func TestDecodeProbabilityMapShapeErrors(t *testing.T) {
	bad := tensor.New(tensor.WithShape(4, 4, 4), tensor.WithBacking(make([]float32, 64)))

	_, err := DecodeProbabilityMap(bad, decodeConfig())

	assert.Error(t, err)
}

func TestRegionScore(t *testing.T) {
	w, h := 10, 10
	data := make([]float32, w*h)
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			data[y*w+x] = 1.0
		}
	}

	contour := []image.Point{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 4}}
	assert.InDelta(t, 1.0, float64(regionScore(data, w, h, contour)), 1e-6)

	// A contour reaching outside is clipped to the map.
	outside := []image.Point{{X: -3, Y: -3}, {X: 12, Y: -3}, {X: 12, Y: 12}, {X: -3, Y: 12}}
	assert.InDelta(t, 9.0/100.0, float64(regionScore(data, w, h, outside)), 1e-6)

	assert.Zero(t, regionScore(data, w, h, nil))
}

func TestExpandedCornersAxisAligned(t *testing.T) {
	rect := gocv.RotatedRect{
		Center: image.Pt(50, 50),
		Width:  20,
		Height: 10,
		Angle:  0,
	}

	quad := expandedCorners(rect, 5)

	want := [4][2]float32{{35, 40}, {65, 40}, {65, 60}, {35, 60}}
	for i, p := range quad {
		assert.InDelta(t, float64(want[i][0]), float64(p.X), 1e-4, "corner %d x", i)
		assert.InDelta(t, float64(want[i][1]), float64(p.Y), 1e-4, "corner %d y", i)
	}
}

func TestExpandedCornersRotated(t *testing.T) {
	rect := gocv.RotatedRect{
		Center: image.Pt(0, 0),
		Width:  20,
		Height: 10,
		Angle:  90,
	}

	quad := expandedCorners(rect, 0)

	// Rotating the 20x10 rect by 90 degrees swaps its extents.
	want := [4][2]float32{{5, -10}, {5, 10}, {-5, 10}, {-5, -10}}
	for i, p := range quad {
		assert.InDelta(t, float64(want[i][0]), float64(p.X), 1e-4, "corner %d x", i)
		assert.InDelta(t, float64(want[i][1]), float64(p.Y), 1e-4, "corner %d y", i)
	}
}
