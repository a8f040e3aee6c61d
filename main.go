// Command scenetext detects text regions in an image, a directory of
// images, or a live camera stream using a pretrained DB model, and
// renders the detections as oriented boxes.
package main

import (
	"errors"
	"flag"
	"image"
	"os"

	"github.com/ocr-ai/go-scenetext/config"
	"github.com/ocr-ai/go-scenetext/detect"
	"github.com/ocr-ai/go-scenetext/logger"
	"github.com/ocr-ai/go-scenetext/runner"
)

func main() {
	log := logger.New()

	if _, err := detect.Capabilities(); err != nil {
		log.Warnf("Extended backend/target probe failed, using the base set: %v", err)
	}

	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid arguments: %v", err)
	}

	det, err := detect.New(detect.Config{
		ModelPath:        cfg.Model,
		InputSize:        image.Pt(cfg.Width, cfg.Height),
		BinaryThreshold:  float32(cfg.BinaryThreshold),
		PolygonThreshold: float32(cfg.PolygonThreshold),
		MaxCandidates:    cfg.MaxCandidates,
		UnclipRatio:      cfg.UnclipRatio,
		Backend:          detect.Backend(cfg.Backend),
		Target:           detect.Target(cfg.Target),
	}, detect.Engine(cfg.Engine))
	if err != nil {
		log.Fatalf("Failed to initialize detector: %v", err)
	}
	defer det.Close()

	if err := runner.New(cfg, det, log).Run(); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}
