package detect

import (
	"os"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
	"gorgonia.org/tensor"
)

// dbMean is the per-channel (BGR) mean the DB models were trained with.
var dbMean = gocv.NewScalar(122.67891434, 116.66876762, 104.00698793, 0)

// DBDetector runs a DB text detection model through the OpenCV DNN module.
type DBDetector struct {
	cfg Config
	net gocv.Net
}

// NewDBDetector loads the model and binds it to the configured backend
// and target.
func NewDBDetector(cfg Config) (*DBDetector, error) {
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, errors.Wrapf(err, "model file %s", cfg.ModelPath)
	}

	net := gocv.ReadNet(cfg.ModelPath, "")
	if net.Empty() {
		return nil, errors.Errorf("load model %s", cfg.ModelPath)
	}
	if err := net.SetPreferableBackend(gocv.NetBackendType(cfg.Backend)); err != nil {
		net.Close()
		return nil, errors.Wrapf(err, "set backend %d", cfg.Backend)
	}
	if err := net.SetPreferableTarget(gocv.NetTargetType(cfg.Target)); err != nil {
		net.Close()
		return nil, errors.Wrapf(err, "set target %d", cfg.Target)
	}

	return &DBDetector{cfg: cfg, net: net}, nil
}

// Name implements Detector.
func (d *DBDetector) Name() string { return "DB" }

// Infer implements Detector. The frame must already be at the model input
// size.
func (d *DBDetector) Infer(frame gocv.Mat) (Result, error) {
	blob := gocv.BlobFromImage(frame, 1.0/255.0, d.cfg.InputSize, dbMean, false, false)
	defer blob.Close()

	d.net.SetInput(blob, "")
	out := d.net.Forward("")
	defer out.Close()

	probs, err := probabilityMapFromMat(out, d.cfg.InputSize.X, d.cfg.InputSize.Y)
	if err != nil {
		return Result{}, err
	}
	return DecodeProbabilityMap(probs, d.cfg)
}

// Close implements Detector.
func (d *DBDetector) Close() error {
	return d.net.Close()
}

// probabilityMapFromMat copies the 1x1xHxW network output into an owned
// (H, W) tensor. The copy matters: the Mat's backing store is released
// when the caller closes it.
func probabilityMapFromMat(out gocv.Mat, width, height int) (*tensor.Dense, error) {
	data, err := out.DataPtrFloat32()
	if err != nil {
		return nil, errors.Wrap(err, "read network output")
	}
	if len(data) < width*height {
		return nil, errors.Errorf("network output holds %d values, need %d", len(data), width*height)
	}
	buf := make([]float32, width*height)
	copy(buf, data[:width*height])
	return tensor.New(tensor.WithShape(height, width), tensor.WithBacking(buf)), nil
}
