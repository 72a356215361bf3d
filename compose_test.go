package expconf

import (
	"bytes"
	"testing"
	"testing/fstest"

	experrors "github.com/randalmurphal/expconf/errors"
	"github.com/randalmurphal/expconf/testutil"
)

func newTestComposer(t *testing.T, extra map[string]string) *Composer {
	t.Helper()

	fsys := testutil.BaseTreeFS()
	for path, content := range extra {
		fsys[path] = &fstest.MapFile{Data: []byte(content)}
	}
	return NewComposer(ComposerConfig{Store: NewStoreFS(fsys)})
}

func TestCompose_BaselineDefaults(t *testing.T) {
	composer := newTestComposer(t, nil)

	resolved, err := composer.Compose("")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	// Root body keys land at the root.
	if got, _ := resolved.GetString("name"); got != "baseline" {
		t.Errorf("name = %q, want baseline", got)
	}
	if got, _ := resolved.GetInt("seed"); got != 12345 {
		t.Errorf("seed = %d, want 12345", got)
	}

	// Category documents land under their category key.
	if got, _ := resolved.GetInt("trainer.max_epochs"); got != 100 {
		t.Errorf("trainer.max_epochs = %d, want 100", got)
	}
	if got, _ := resolved.GetFloat("model.lr"); got != 0.001 {
		t.Errorf("model.lr = %v, want 0.001", got)
	}
	if got, _ := resolved.GetInt("datamodule.batch_size"); got != 64 {
		t.Errorf("datamodule.batch_size = %d, want 64", got)
	}
	if got, _ := resolved.GetString("callbacks.model_checkpoint.monitor"); got != "val/ap" {
		t.Errorf("callbacks.model_checkpoint.monitor = %q, want val/ap", got)
	}

	// A global-scoped category document merges at the root.
	if got, _ := resolved.GetBool("ignore_warnings"); got != true {
		t.Error("ignore_warnings not placed at root by _global_ marker")
	}
	if resolved.Has("mode") {
		t.Error("global-scoped mode document must not nest under its category")
	}
}

// Scenario: the trainer override keeps all untouched base keys.
func TestCompose_TrainerOverrides(t *testing.T) {
	composer := newTestComposer(t, map[string]string{
		"experiment/ddp.yaml": `# @package _global_

name: ddp
trainer:
  max_epochs: 150
  gpus: 4
  strategy: ddp
`,
	})

	resolved, err := composer.Compose("ddp")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	if got, _ := resolved.GetInt("trainer.max_epochs"); got != 150 {
		t.Errorf("trainer.max_epochs = %d, want 150", got)
	}
	if got, _ := resolved.GetInt("trainer.gpus"); got != 4 {
		t.Errorf("trainer.gpus = %d, want 4", got)
	}
	if got, _ := resolved.GetString("trainer.strategy"); got != "ddp" {
		t.Errorf("trainer.strategy = %q, want ddp", got)
	}

	// Untouched trainer keys are retained from the base document.
	if got, _ := resolved.GetInt("trainer.min_epochs"); got != 1 {
		t.Errorf("trainer.min_epochs = %d, want 1", got)
	}
	if got, _ := resolved.GetInt("trainer.precision"); got != 16 {
		t.Errorf("trainer.precision = %d, want 16", got)
	}
}

func TestCompose_EffinetExperiment(t *testing.T) {
	composer := newTestComposer(t, nil)

	resolved, err := composer.Compose("effinet")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	if got, _ := resolved.GetString("name"); got != "effinet" {
		t.Errorf("name = %q, want effinet", got)
	}
	if got, _ := resolved.GetBool("model.freeze_layers"); got != false {
		t.Error("model.freeze_layers = true, want false")
	}
	if got, _ := resolved.GetInt("model.pos_weight"); got != 10 {
		t.Errorf("model.pos_weight = %d, want 10", got)
	}
	if got, _ := resolved.GetFloat("model.lr"); got != 0.0001 {
		t.Errorf("model.lr = %v, want 0.0001", got)
	}
	if got, _ := resolved.GetFloat("model.weight_decay"); got != 0.005 {
		t.Errorf("model.weight_decay = %v, want 0.005", got)
	}

	// Untouched keys come from the swapped-in base document.
	if got, _ := resolved.GetInt("model.output_size"); got != 1 {
		t.Errorf("model.output_size = %d, want 1", got)
	}
}

// An override must not clear unrelated sibling keys: freeze_layers sets
// no lr, so the resolved lr equals the base model default.
func TestCompose_FreezeLayersRetainsSiblings(t *testing.T) {
	composer := newTestComposer(t, nil)

	resolved, err := composer.Compose("freeze_layers")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	if got, _ := resolved.GetBool("model.freeze_layers"); got != true {
		t.Error("model.freeze_layers = false, want true")
	}
	if got, _ := resolved.GetInt("model.pos_weight"); got != 50 {
		t.Errorf("model.pos_weight = %d, want 50", got)
	}
	if got, _ := resolved.GetFloat("model.lr"); got != 0.001 {
		t.Errorf("model.lr = %v, want base default 0.001", got)
	}
}

func TestCompose_DefaultSelectionSwap(t *testing.T) {
	composer := newTestComposer(t, map[string]string{
		"experiment/multi_gpu.yaml": `# @package _global_

defaults:
  - override /trainer: ddp.yaml

name: multi_gpu
`,
	})

	resolved, err := composer.Compose("multi_gpu")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	if got, _ := resolved.GetInt("trainer.gpus"); got != 4 {
		t.Errorf("trainer.gpus = %d, want 4 from trainer/ddp.yaml", got)
	}
	if got, _ := resolved.GetString("trainer.strategy"); got != "ddp" {
		t.Errorf("trainer.strategy = %q, want ddp", got)
	}
}

// An experiment document with no defaults and no body leaves the
// baseline composition unchanged, byte for byte.
func TestCompose_EmptyExperimentIsBaseline(t *testing.T) {
	composer := newTestComposer(t, map[string]string{
		"experiment/noop.yaml": "# @package _global_\n",
	})

	baseline, err := composer.Compose("")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	resolved, err := composer.Compose("noop")
	if err != nil {
		t.Fatalf("Compose(noop) error: %v", err)
	}

	if !Tree(resolved.AsMap()).Equal(Tree(baseline.AsMap())) {
		t.Error("empty experiment changed the baseline composition")
	}

	baselineYAML, err := baseline.YAML()
	if err != nil {
		t.Fatalf("YAML() error: %v", err)
	}
	resolvedYAML, err := resolved.YAML()
	if err != nil {
		t.Fatalf("YAML() error: %v", err)
	}
	if !bytes.Equal(baselineYAML, resolvedYAML) {
		t.Error("empty experiment rendered differently from the baseline")
	}
}

func TestCompose_UnknownCategoryNoPartialOutput(t *testing.T) {
	composer := newTestComposer(t, map[string]string{
		"experiment/broken.yaml": `# @package _global_

defaults:
  - override /nonexistent: x.yaml

name: broken
`,
	})

	resolved, err := composer.Compose("broken")
	if !experrors.IsUnknownCategory(err) {
		t.Errorf("error = %v, want UnknownCategoryError", err)
	}
	if resolved != nil {
		t.Error("expected no partial output on failure")
	}
}

func TestCompose_MissingDefault(t *testing.T) {
	composer := newTestComposer(t, map[string]string{
		"experiment/missing.yaml": `# @package _global_

defaults:
  - override /model: resnet.yaml
`,
	})

	_, err := composer.Compose("missing")
	if !experrors.IsMissingDefault(err) {
		t.Errorf("error = %v, want MissingDefaultError", err)
	}
}

func TestCompose_UnknownExperiment(t *testing.T) {
	composer := newTestComposer(t, nil)

	_, err := composer.Compose("nope")
	if !experrors.IsMissingDefault(err) {
		t.Errorf("error = %v, want MissingDefaultError", err)
	}
}

func TestCompose_CommandLineOverridesApplyLast(t *testing.T) {
	composer := newTestComposer(t, nil)

	resolved, err := composer.Compose("effinet",
		"model.lr=0.01", "trainer.gpus=8", "+tags=smoke")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	if got, _ := resolved.GetFloat("model.lr"); got != 0.01 {
		t.Errorf("model.lr = %v, want 0.01", got)
	}
	if got, _ := resolved.GetInt("trainer.gpus"); got != 8 {
		t.Errorf("trainer.gpus = %d, want 8", got)
	}
	if got, _ := resolved.GetString("tags"); got != "smoke" {
		t.Errorf("tags = %q, want smoke", got)
	}
}

func TestCompose_MalformedOverride(t *testing.T) {
	composer := newTestComposer(t, nil)

	_, err := composer.Compose("effinet", "model.lr")
	if !experrors.IsParseError(err) {
		t.Errorf("error = %v, want ParseError", err)
	}
}

func TestCompose_Deterministic(t *testing.T) {
	composer := newTestComposer(t, nil)

	first, err := composer.Compose("effinet", "trainer.gpus=4")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	second, err := composer.Compose("effinet", "trainer.gpus=4")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	firstYAML, err := first.YAML()
	if err != nil {
		t.Fatalf("YAML() error: %v", err)
	}
	secondYAML, err := second.YAML()
	if err != nil {
		t.Fatalf("YAML() error: %v", err)
	}

	if !bytes.Equal(firstYAML, secondYAML) {
		t.Error("resolving twice produced different output")
	}
}
