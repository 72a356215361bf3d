package cli

import (
	"reflect"
	"testing"
)

func TestSplitComposeArgs(t *testing.T) {
	experiment, overrides, err := splitComposeArgs(
		[]string{"trainer.gpus=4", "effinet", "model.lr=0.01"})
	if err != nil {
		t.Fatalf("splitComposeArgs() error: %v", err)
	}

	if experiment != "effinet" {
		t.Errorf("experiment = %q, want effinet", experiment)
	}
	want := []string{"trainer.gpus=4", "model.lr=0.01"}
	if !reflect.DeepEqual(overrides, want) {
		t.Errorf("overrides = %v, want %v", overrides, want)
	}
}

func TestSplitComposeArgs_OverridesOnly(t *testing.T) {
	experiment, overrides, err := splitComposeArgs([]string{"model.lr=0.01"})
	if err != nil {
		t.Fatalf("splitComposeArgs() error: %v", err)
	}
	if experiment != "" {
		t.Errorf("experiment = %q, want empty", experiment)
	}
	if len(overrides) != 1 {
		t.Errorf("overrides = %v, want one entry", overrides)
	}
}

func TestSplitComposeArgs_TwoExperiments(t *testing.T) {
	if _, _, err := splitComposeArgs([]string{"effinet", "mvit"}); err == nil {
		t.Error("expected error for two experiment names")
	}
}
