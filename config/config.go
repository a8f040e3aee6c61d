// Package config - Immutable CLI configuration.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/ocr-ai/go-scenetext/detect"
)

const (
	// DefaultModelFile is the pretrained DB artifact looked up when no
	// --model flag is given.
	DefaultModelFile = "text_detection_DB_TD500_resnet18_2021sep.onnx"
	// DefaultResultFile is where image-mode results are written with
	// --save. Overwritten silently if it exists.
	DefaultResultFile = "result.jpg"
)

// Config is built once at startup and passed by value; nothing mutates it
// afterwards.
type Config struct {
	// Input is an image path or a directory of images. Empty selects
	// stream mode on the default camera.
	Input string

	Model  string `validate:"required"`
	Engine string `validate:"oneof=opencv ort"`

	// Backend and Target are forwarded opaquely to the detector.
	Backend int
	Target  int

	// Model input size. Should be a multiple of 32; the models tolerate
	// other values poorly but this is intentionally not enforced.
	Width  int `validate:"gt=0"`
	Height int `validate:"gt=0"`

	BinaryThreshold  float64 `validate:"gte=0,lte=1"`
	PolygonThreshold float64 `validate:"gte=0,lte=1"`
	MaxCandidates    int     `validate:"gt=0"`
	UnclipRatio      float64 `validate:"gt=0"`

	// Save writes image-mode results to ResultFile. Inert in stream mode.
	Save bool
	// Vis shows a result window; image mode blocks on a key press.
	Vis bool

	DeviceID   int
	ResultFile string
}

// Load parses args into a validated Config. A .env file in the working
// directory, when present, supplies defaults for the model path and
// related settings before flags are applied.
func Load(args []string, output io.Writer) (Config, error) {
	_ = godotenv.Load()

	caps, _ := detect.Capabilities()

	cfg := Config{
		Model:            envOr("SCENETEXT_MODEL", DefaultModelFile),
		Engine:           envOr("SCENETEXT_ENGINE", "opencv"),
		Backend:          int(caps.Backends[0]),
		Target:           int(caps.Targets[0]),
		Width:            736,
		Height:           736,
		BinaryThreshold:  0.3,
		PolygonThreshold: 0.5,
		MaxCandidates:    200,
		UnclipRatio:      2.0,
		Vis:              true,
		ResultFile:       DefaultResultFile,
	}

	fs := flag.NewFlagSet("scenetext", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Input, "input", cfg.Input, "Path to the input image or image directory. Omit for the default camera.")
	fs.StringVar(&cfg.Input, "i", cfg.Input, "Shorthand for -input.")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "Path to the DB detection model.")
	fs.StringVar(&cfg.Model, "m", cfg.Model, "Shorthand for -model.")
	fs.StringVar(&cfg.Engine, "engine", cfg.Engine, "Inference engine: opencv or ort.")
	fs.IntVar(&cfg.Backend, "backend", cfg.Backend, fmt.Sprintf("Computation backend, one of %v.", caps.Backends))
	fs.IntVar(&cfg.Backend, "b", cfg.Backend, "Shorthand for -backend.")
	fs.IntVar(&cfg.Target, "target", cfg.Target, fmt.Sprintf("Computation target device, one of %v.", caps.Targets))
	fs.IntVar(&cfg.Target, "t", cfg.Target, "Shorthand for -target.")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Model input width, should be a multiple of 32.")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Model input height, should be a multiple of 32.")
	fs.Float64Var(&cfg.BinaryThreshold, "binary_threshold", cfg.BinaryThreshold, "Threshold of the binary map.")
	fs.Float64Var(&cfg.PolygonThreshold, "polygon_threshold", cfg.PolygonThreshold, "Minimum score of candidate polygons.")
	fs.IntVar(&cfg.MaxCandidates, "max_candidates", cfg.MaxCandidates, "Maximum number of polygon candidates.")
	fs.Float64Var(&cfg.UnclipRatio, "unclip_ratio", cfg.UnclipRatio, "Unclip ratio of detected text regions.")
	fs.IntVar(&cfg.DeviceID, "device", cfg.DeviceID, "Camera device index used in stream mode.")

	// Kept as a string switch to stay flag compatible with the original
	// tool, which accepted forms like "yes" and "on".
	save := fs.String("save", "false", "Save image-mode results to "+DefaultResultFile+". Invalid for camera input.")
	fs.StringVar(save, "s", *save, "Shorthand for -save.")
	fs.BoolVar(&cfg.Vis, "vis", cfg.Vis, "Show results in a window.")
	fs.BoolVar(&cfg.Vis, "v", cfg.Vis, "Shorthand for -vis.")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var err error
	cfg.Save, err = ParseSwitch(*save)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse -save")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// ParseSwitch interprets the original tool's loose boolean forms.
func ParseSwitch(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "yes", "true", "y", "t", "1":
		return true, nil
	case "off", "no", "false", "n", "f", "0", "":
		return false, nil
	}
	return false, errors.Errorf("unrecognized boolean value %q", v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
