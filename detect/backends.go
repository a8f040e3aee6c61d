package detect

import (
	"sync"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Backend is an OpenCV DNN compute backend identifier.
type Backend gocv.NetBackendType

// Target is an OpenCV DNN compute target identifier.
type Target gocv.NetTargetType

// CapabilitySet is the set of backends and targets the current build is
// known to accept, in preference order. The first entry of each list is
// the default.
type CapabilitySet struct {
	Backends []Backend
	Targets  []Target
}

// baseCapabilities is always available: the plain OpenCV implementation
// and CUDA, with CPU, CUDA and CUDA fp16 targets.
func baseCapabilities() CapabilitySet {
	return CapabilitySet{
		Backends: []Backend{
			Backend(gocv.NetBackendOpenCV),
			Backend(gocv.NetBackendCUDA),
		},
		Targets: []Target{
			Target(gocv.NetTargetCPU),
			Target(gocv.NetTargetCUDA),
			Target(gocv.NetTargetCUDAFP16),
		},
	}
}

// extendedProbe reports optional backend/target pairs beyond the base
// set. Swappable in tests to exercise degradation.
var extendedProbe = func() ([]Backend, []Target, error) {
	return []Backend{Backend(gocv.NetBackendVKCOM)},
		[]Target{Target(gocv.NetTargetVulkan)},
		nil
}

var (
	capsOnce sync.Once
	caps     CapabilitySet
	capsErr  error
)

// Capabilities returns the supported backend and target sets, evaluated
// once per process. When probing the optional capabilities fails the base
// set is returned together with the probe error; callers treat that as a
// warning, not a fatal condition.
func Capabilities() (CapabilitySet, error) {
	capsOnce.Do(func() {
		caps, capsErr = capabilities(extendedProbe)
	})
	return caps, capsErr
}

func capabilities(probe func() ([]Backend, []Target, error)) (CapabilitySet, error) {
	set := baseCapabilities()
	extraBackends, extraTargets, err := probe()
	if err != nil {
		return set, errors.Wrap(err, "probe extended dnn capabilities")
	}
	set.Backends = append(set.Backends, extraBackends...)
	set.Targets = append(set.Targets, extraTargets...)
	return set, nil
}
