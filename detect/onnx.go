package detect

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
	"gocv.io/x/gocv"
	"gorgonia.org/tensor"
)

// ONNXDetector runs a DB text detection model through ONNX Runtime with
// preallocated fixed-shape input and output tensors.
type ONNXDetector struct {
	cfg     Config
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
}

// NewONNXDetector initializes the ONNX Runtime environment (once per
// process) and creates a session bound to the model.
func NewONNXDetector(cfg Config) (*ONNXDetector, error) {
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, errors.Wrapf(err, "model file %s", cfg.ModelPath)
	}

	if !ort.IsInitialized() {
		libPath := cfg.ORTLibraryPath
		if libPath == "" {
			libPath = defaultORTLibraryPath()
		}
		if _, err := os.Stat(libPath); err != nil {
			return nil, errors.Wrapf(err, "onnxruntime library %s", libPath)
		}
		ort.SetSharedLibraryPath(libPath)
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, errors.Wrap(err, "initialize onnxruntime environment")
		}
	}

	w, h := int64(cfg.InputSize.X), int64(cfg.InputSize.Y)
	input, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 3, h, w))
	if err != nil {
		return nil, errors.Wrap(err, "allocate input tensor")
	}
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 1, h, w))
	if err != nil {
		input.Destroy()
		return nil, errors.Wrap(err, "allocate output tensor")
	}

	session, err := ort.NewAdvancedSession(
		cfg.ModelPath,
		[]string{cfg.inputName()},
		[]string{cfg.outputName()},
		[]ort.ArbitraryTensor{input},
		[]ort.ArbitraryTensor{output},
		nil,
	)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, errors.Wrap(err, "create onnxruntime session")
	}

	return &ONNXDetector{cfg: cfg, session: session, input: input, output: output}, nil
}

// Name implements Detector.
func (d *ONNXDetector) Name() string { return "DB" }

// Infer implements Detector.
func (d *ONNXDetector) Infer(frame gocv.Mat) (Result, error) {
	img, err := frame.ToImage()
	if err != nil {
		return Result{}, errors.Wrap(err, "convert frame")
	}
	if err := fillInputTensor(img, d.cfg.InputSize, d.input.GetData()); err != nil {
		return Result{}, err
	}

	if err := d.session.Run(); err != nil {
		return Result{}, errors.Wrap(err, "run onnxruntime session")
	}

	out := d.output.GetData()
	size := d.cfg.InputSize.X * d.cfg.InputSize.Y
	if len(out) < size {
		return Result{}, errors.Errorf("network output holds %d values, need %d", len(out), size)
	}
	buf := make([]float32, size)
	copy(buf, out[:size])
	probs := tensor.New(tensor.WithShape(d.cfg.InputSize.Y, d.cfg.InputSize.X), tensor.WithBacking(buf))

	return DecodeProbabilityMap(probs, d.cfg)
}

// Close implements Detector.
func (d *ONNXDetector) Close() error {
	if d.session != nil {
		d.session.Destroy()
		d.session = nil
	}
	if d.input != nil {
		d.input.Destroy()
		d.input = nil
	}
	if d.output != nil {
		d.output.Destroy()
		d.output = nil
	}
	return nil
}

// defaultORTLibraryPath returns where the native runtime is expected for
// the current platform. Overridable per config or SCENETEXT_ORT_LIBRARY.
func defaultORTLibraryPath() string {
	if env := os.Getenv("SCENETEXT_ORT_LIBRARY"); env != "" {
		return env
	}
	switch runtime.GOOS {
	case "windows":
		return "third_party/onnxruntime.dll"
	case "darwin":
		return "third_party/libonnxruntime.dylib"
	default:
		if runtime.GOARCH == "arm64" {
			return "third_party/onnxruntime_arm64.so"
		}
		return "third_party/onnxruntime.so"
	}
}
