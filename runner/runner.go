// Package runner - Orchestration of the detect/rescale/render pipeline.
package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"github.com/ocr-ai/go-scenetext/config"
	"github.com/ocr-ai/go-scenetext/detect"
	"github.com/ocr-ai/go-scenetext/images"
	"github.com/ocr-ai/go-scenetext/render"
	"github.com/ocr-ai/go-scenetext/util"
)

// Runner drives one of three terminal flows: a single image, a directory
// of images, or a live capture stream. Everything is synchronous; a frame
// is fully acquired, inferred, rescaled, rendered and shown before the
// next one starts.
type Runner struct {
	cfg        config.Config
	det        detect.Detector
	log        *logrus.Logger
	style      render.Style
	newDisplay DisplayFactory
}

// New builds a Runner with the default window display and style.
func New(cfg config.Config, det detect.Detector, log *logrus.Logger) *Runner {
	return &Runner{
		cfg:        cfg,
		det:        det,
		log:        log,
		style:      render.DefaultStyle(),
		newDisplay: NewWindow,
	}
}

// Run dispatches on the configured input: empty means the default camera,
// a directory means batch mode, anything else is treated as an image.
func (r *Runner) Run() error {
	if r.cfg.Input == "" {
		src, err := OpenCamera(r.cfg.DeviceID)
		if err != nil {
			return err
		}
		defer src.Close()
		return r.RunStream(src)
	}

	info, err := os.Stat(r.cfg.Input)
	if err != nil {
		return errors.Wrapf(err, "input %s", r.cfg.Input)
	}
	if info.IsDir() {
		return r.RunBatch(r.cfg.Input)
	}
	return r.RunImage(r.cfg.Input, r.cfg.ResultFile)
}

// RunImage processes one image: detect, rescale to the original
// resolution, render, then save and/or display per configuration. The
// result file is overwritten silently when it already exists.
func (r *Runner) RunImage(path, resultFile string) error {
	frame := gocv.IMRead(path, gocv.IMReadColor)
	if frame.Empty() {
		return errors.Errorf("cannot decode image %s", path)
	}
	defer frame.Close()

	result, scaled, err := r.detectFrame(frame, nil)
	if err != nil {
		return err
	}

	r.log.Infof("%d texts detected.", len(scaled))
	for i, quad := range scaled {
		r.log.Infof("%d: %s, %.2f", i, quad, result.Scores[i])
	}

	out := render.Render(frame, scaled, r.style, nil)
	defer out.Close()

	if r.cfg.Save {
		if ok := gocv.IMWrite(resultFile, out); !ok {
			return errors.Errorf("write result to %s", resultFile)
		}
		r.log.Infof("Results saved to %s", resultFile)
	}

	if r.cfg.Vis {
		d := r.newDisplay(path)
		defer d.Close()
		d.Show(out)
		d.Wait()
	}
	return nil
}

// RunBatch processes every image directly under dir in name order. Saved
// results take per-file names so they do not clobber each other.
func (r *Runner) RunBatch(dir string) error {
	paths, err := util.ImagePaths(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.Errorf("no images found in %s", dir)
	}

	for _, path := range paths {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if err := r.RunImage(path, fmt.Sprintf("result_%s.jpg", base)); err != nil {
			return err
		}
	}
	return nil
}

// RunStream processes frames from src until acquisition fails or a key is
// pressed. Acquisition failure is normal stream termination, not an
// error. The save flag is inert here.
func (r *Runner) RunStream(src Source) error {
	d := r.newDisplay(fmt.Sprintf("%s Demo", r.det.Name()))
	defer d.Close()

	frame := gocv.NewMat()
	defer frame.Close()
	meter := NewMeter()

	for {
		if ok := src.Read(&frame); !ok {
			r.log.Info("No frames grabbed!")
			return nil
		}
		if frame.Empty() {
			continue
		}

		_, scaled, err := r.detectFrame(frame, meter)
		if err != nil {
			return err
		}

		fps := meter.FPS()
		out := render.Render(frame, scaled, r.style, &fps)
		d.Show(out)
		out.Close()
		meter.Reset()

		if key := d.Poll(pollInterval); key >= 0 {
			return nil
		}
	}
}

// detectFrame resizes a copy of the frame to the model input size, runs
// inference (timed when a meter is given) and maps the detections back to
// the frame's own coordinate space. Scale factors are derived from this
// frame, not cached across frames.
func (r *Runner) detectFrame(frame gocv.Mat, meter *Meter) (detect.Result, []images.Quad, error) {
	scale := images.NewScaleFactors(frame.Cols(), frame.Rows(), r.cfg.Width, r.cfg.Height)

	resized := images.ResizeFrame(frame, r.cfg.Width, r.cfg.Height)
	defer resized.Close()

	if meter != nil {
		meter.Start()
	}
	result, err := r.det.Infer(resized)
	if meter != nil {
		meter.Stop()
	}
	if err != nil {
		return detect.Result{}, nil, errors.Wrap(err, "inference")
	}

	return result, images.Rescale(result.Boxes, scale), nil
}
