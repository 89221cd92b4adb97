package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/duramedstack/duramed-sla/internal/models"
)

func TestDefaultReturnsCopy(t *testing.T) {
	first := Default()
	first[0].Threshold = -1

	second := Default()
	if second[0].Threshold == -1 {
		t.Fatalf("Default must not alias the shared policy slice")
	}
	if len(second) != 4 {
		t.Fatalf("expected four default specs, got %d", len(second))
	}
}

func TestDefaultSpecKinds(t *testing.T) {
	kinds := map[string]models.MetricKind{}
	for _, spec := range Default() {
		kinds[spec.Metric] = spec.Kind()
	}
	if kinds["delivery_time_hours"] != models.MetricKindWindow {
		t.Fatalf("delivery should be a window metric")
	}
	if kinds["first_pass_ratio"] != models.MetricKindRatio {
		t.Fatalf("first pass should be a ratio metric")
	}
	if kinds["status_latency_hours"] != models.MetricKindLatency {
		t.Fatalf("status latency should be a latency metric")
	}
}

func TestLoadPackMissingFileFallsBack(t *testing.T) {
	specs, version, err := LoadPack(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing pack should fall back to defaults: %v", err)
	}
	if version != DefaultVersion || len(specs) != len(Default()) {
		t.Fatalf("expected default policy, got %d specs version %s", len(specs), version)
	}
}

func TestLoadPackParsesSpecs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	doc := `version: "pilot-1"
specs:
  - name: Fast Delivery
    metric: delivery_time_hours
    threshold: 24
    window: "order.created -> shipment.delivered"
    credit_rule:
      per_breach: 50
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write pack: %v", err)
	}

	specs, version, err := LoadPack(path)
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	if version != "pilot-1" {
		t.Fatalf("unexpected version: %s", version)
	}
	if len(specs) != 1 || specs[0].Threshold != 24 || specs[0].CreditRule.PerBreach != 50 {
		t.Fatalf("unexpected specs: %+v", specs)
	}
}

func TestValidateRejectsBadWindow(t *testing.T) {
	err := Validate([]models.SlaSpec{{Name: "Broken", Metric: "m_hours", Window: "a -> b -> c"}})
	if err == nil {
		t.Fatalf("expected window syntax error")
	}
	if _, ok := err.(*Error); !ok {
		t.Fatalf("expected *policy.Error, got %T", err)
	}
}

func TestValidateRejectsMissingMetric(t *testing.T) {
	if err := Validate([]models.SlaSpec{{Name: "NoMetric", Window: "a -> b"}}); err == nil {
		t.Fatalf("expected metric requirement error")
	}
}
