package runner

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Source yields frames for stream mode. Read reports false when no more
// frames can be acquired, which ends the stream.
type Source interface {
	Read(frame *gocv.Mat) bool
	Close() error
}

type captureSource struct {
	cap *gocv.VideoCapture
}

// OpenCamera opens a capture device as a Source.
func OpenCamera(deviceID int) (Source, error) {
	cap, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, errors.Wrapf(err, "open video capture device %d", deviceID)
	}
	return &captureSource{cap: cap}, nil
}

func (s *captureSource) Read(frame *gocv.Mat) bool {
	return s.cap.Read(frame)
}

func (s *captureSource) Close() error {
	return s.cap.Close()
}
