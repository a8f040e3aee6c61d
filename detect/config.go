package detect

import "image"

// Config represents the configuration for a DB text detector.
//
// BinaryThreshold, PolygonThreshold, MaxCandidates and UnclipRatio control
// probability-map decoding; Backend and Target are forwarded to the engine
// untouched.
type Config struct {
	// ModelPath is the path to the pretrained DB ONNX artifact.
	ModelPath string

	// InputSize is the fixed model input size. DB models expect both
	// dimensions to be multiples of 32.
	InputSize image.Point

	// BinaryThreshold binarizes the probability map.
	BinaryThreshold float32

	// PolygonThreshold is the minimum mean probability of a candidate
	// region for it to be kept.
	PolygonThreshold float32

	// MaxCandidates caps how many contours are considered per frame.
	MaxCandidates int

	// UnclipRatio controls how far detected regions are expanded back
	// out after the shrink the network was trained with.
	UnclipRatio float64

	// Backend and Target select the compute backend and device for the
	// OpenCV DNN engine.
	Backend Backend
	Target  Target

	// InputName and OutputName are the model tensor names used by the
	// ONNX Runtime engine.
	InputName  string
	OutputName string

	// ORTLibraryPath overrides the ONNX Runtime shared library location.
	ORTLibraryPath string
}

const (
	// DefaultInputName is the graph input of the OpenCV Zoo DB export.
	DefaultInputName = "input"
	// DefaultOutputName is the probability-map output of the same export.
	DefaultOutputName = "output"
)

func (c Config) inputName() string {
	if c.InputName == "" {
		return DefaultInputName
	}
	return c.InputName
}

func (c Config) outputName() string {
	if c.OutputName == "" {
		return DefaultOutputName
	}
	return c.OutputName
}
