package detect

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// fillInputTensor populates a CHW float32 buffer with the DB input
// normalization: channels in BGR order, per-channel mean subtracted, then
// scaled by 1/255. This mirrors what BlobFromImage produces on the OpenCV
// engine so both engines feed the network identically.
//
// Arguments:
//   - img: The frame to prepare.
//   - size: The model input size.
//   - dst: Destination buffer of at least 3*size.X*size.Y floats.
//
// Returns:
//   - error: An error if dst is too small.
func fillInputTensor(img image.Image, size image.Point, dst []float32) error {
	channelSize := size.X * size.Y
	if len(dst) < channelSize*3 {
		return errors.Errorf("input tensor holds %d floats, needs %d (make sure it's the right shape)",
			len(dst), channelSize*3)
	}
	blue := dst[0:channelSize]
	green := dst[channelSize : channelSize*2]
	red := dst[channelSize*2 : channelSize*3]

	bounds := img.Bounds()
	if bounds.Dx() != size.X || bounds.Dy() != size.Y {
		img = resize.Resize(uint(size.X), uint(size.Y), img, resize.Lanczos3)
	}

	const (
		meanB float32 = 122.67891434
		meanG float32 = 116.66876762
		meanR float32 = 104.00698793
	)

	i := 0
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			blue[i] = (float32(b>>8) - meanB) / 255.0
			green[i] = (float32(g>>8) - meanG) / 255.0
			red[i] = (float32(r>>8) - meanR) / 255.0
			i++
		}
	}
	return nil
}
