package images

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadToImagePoints(t *testing.T) {
	q := Quad{{X: 1.9, Y: 2.1}, {X: 3, Y: 4}, {X: 5.5, Y: 6.5}, {X: 0, Y: 0}}

	pts := q.ToImagePoints()

	assert.Equal(t, []image.Point{
		image.Pt(1, 2), image.Pt(3, 4), image.Pt(5, 6), image.Pt(0, 0),
	}, pts, "coordinates truncate toward zero")
}

func TestQuadString(t *testing.T) {
	q := Quad{{X: 200, Y: 200}, {X: 400, Y: 200}, {X: 400, Y: 400}, {X: 200, Y: 400}}
	assert.Equal(t, "[200 200] [400 200] [400 400] [200 400]", q.String())
}
