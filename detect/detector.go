// Package detect - DB scene-text detection engines and decoding.
package detect

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/ocr-ai/go-scenetext/images"
)

// Result holds the detections for one frame. Boxes and Scores are parallel
// slices: Scores[i] is the confidence of Boxes[i]. Order is the order the
// candidates were decoded in and is preserved downstream.
type Result struct {
	Boxes  []images.Quad
	Scores []float32
}

// Detector runs text detection on a frame already resized to the model
// input size and returns quads in model-input coordinate space.
type Detector interface {
	// Name identifies the model for window titles and logs.
	Name() string
	// Infer runs one synchronous inference pass.
	Infer(frame gocv.Mat) (Result, error)
	// Close releases engine resources.
	Close() error
}

// Engine selects the inference backend implementation.
type Engine string

const (
	// EngineOpenCV runs the model through the OpenCV DNN module.
	EngineOpenCV Engine = "opencv"
	// EngineONNXRuntime runs the model through ONNX Runtime.
	EngineONNXRuntime Engine = "ort"
)

// New constructs the detector for the configured engine.
func New(cfg Config, engine Engine) (Detector, error) {
	switch engine {
	case EngineOpenCV:
		return NewDBDetector(cfg)
	case EngineONNXRuntime:
		return NewONNXDetector(cfg)
	default:
		return nil, errors.Errorf("unknown inference engine %q", engine)
	}
}
