package policy

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/duramedstack/duramed-sla/internal/models"
)

// DefaultVersion labels scores produced by the built-in policy.
const DefaultVersion = "2024.09"

// defaultSpecs is the process-wide default policy. Thresholds and credits
// are business parameters; callers needing variation pass an explicit
// override to Evaluate instead of mutating this.
var defaultSpecs = []models.SlaSpec{
	{
		Name:       "On-Time Delivery",
		Metric:     "delivery_time_hours",
		Threshold:  72,
		Window:     "order.created -> shipment.delivered",
		CreditRule: models.CreditRule{PerBreach: 100.0},
	},
	{
		Name:       "Days Sales Outstanding",
		Metric:     "dso_days",
		Threshold:  45,
		Window:     "order.created -> claim.paid",
		CreditRule: models.CreditRule{PerBreach: 150.0},
	},
	{
		Name:       "First-Pass Approvals",
		Metric:     "first_pass_ratio",
		Threshold:  0.98,
		Window:     "order.first_pass",
		CreditRule: models.CreditRule{PerBreach: 75.0},
	},
	{
		Name:       "Status Sync Latency",
		Metric:     "status_latency_hours",
		Threshold:  96,
		Window:     "status.live",
		CreditRule: models.CreditRule{PerBreach: 25.0},
	},
}

// Default returns a copy of the default policy so callers can introspect
// thresholds without aliasing the shared slice.
func Default() []models.SlaSpec {
	return append([]models.SlaSpec(nil), defaultSpecs...)
}

// PackFile is the YAML root structure of a policy pack.
type PackFile struct {
	Version string           `yaml:"version"`
	Specs   []models.SlaSpec `yaml:"specs"`
}

// LoadPack reads a policy pack from disk. An empty path or a missing file
// yields the default policy and version.
func LoadPack(path string) ([]models.SlaSpec, string, error) {
	if path == "" {
		return Default(), DefaultVersion, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), DefaultVersion, nil
		}
		return nil, "", fmt.Errorf("read policy pack: %w", err)
	}
	var pack PackFile
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, "", fmt.Errorf("parse policy pack: %w", err)
	}
	if len(pack.Specs) == 0 {
		return Default(), DefaultVersion, nil
	}
	if err := Validate(pack.Specs); err != nil {
		return nil, "", err
	}
	version := pack.Version
	if version == "" {
		version = DefaultVersion
	}
	return pack.Specs, version, nil
}

// Validate checks every spec's window syntax and identity fields, failing
// fast at policy construction rather than first use.
func Validate(specs []models.SlaSpec) error {
	for _, spec := range specs {
		if spec.Metric == "" {
			return &Error{Spec: spec.Name, Reason: "metric name is required"}
		}
		window := strings.TrimSpace(spec.Window)
		if window == "" {
			return &Error{Spec: spec.Name, Reason: "window is required"}
		}
		if strings.Count(window, models.WindowSeparator) > 1 {
			return &Error{Spec: spec.Name, Reason: fmt.Sprintf("unrecognized window syntax %q", spec.Window)}
		}
		start, end := spec.WindowTopics()
		if start == "" || end == "" {
			return &Error{Spec: spec.Name, Reason: fmt.Sprintf("unrecognized window syntax %q", spec.Window)}
		}
	}
	return nil
}

// Error reports a malformed spec inside a policy.
type Error struct {
	Spec   string
	Reason string
}

func (e *Error) Error() string {
	if e.Spec == "" {
		return fmt.Sprintf("policy: %s", e.Reason)
	}
	return fmt.Sprintf("policy: spec %q: %s", e.Spec, e.Reason)
}
