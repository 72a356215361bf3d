// Package testutil provides utilities for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

// BaseTree returns the canonical test configuration store: a root
// document, base documents for every category, and two experiment
// override documents. Keys are store-relative paths.
//
// The tree mirrors a binary-classification training setup: an MViT and an
// EfficientNet model config, a single datamodule, checkpoint/early-stop
// callbacks, and a CSV logger.
func BaseTree() map[string]string {
	return map[string]string{
		"config.yaml": `defaults:
  - mode: default.yaml
  - trainer: default.yaml
  - model: mvit.yaml
  - datamodule: health.yaml
  - callbacks: default.yaml
  - logger: csv.yaml
  - _self_

name: baseline
seed: 12345
`,
		"mode/default.yaml": `# @package _global_

ignore_warnings: true
test_after_training: true
`,
		"trainer/default.yaml": `min_epochs: 1
max_epochs: 100
gpus: 1
precision: 16
`,
		"trainer/ddp.yaml": `min_epochs: 1
max_epochs: 100
gpus: 4
precision: 16
strategy: ddp
`,
		"model/mvit.yaml": `freeze_layers: false
output_size: 1
pos_weight: 1
lr: 0.001
weight_decay: 0.0005
lr_scheduler_min_lr: 0.0005
lr_scheduler_factor: 0.0005
lr_scheduler_patience: 10
`,
		"model/effinet.yaml": `freeze_layers: false
output_size: 1
pos_weight: 1
lr: 0.001
weight_decay: 0.0005
lr_scheduler_min_lr: 0.0005
lr_scheduler_factor: 0.0005
lr_scheduler_patience: 10
`,
		"datamodule/health.yaml": `train_path: data/train.csv
val_path: data/valid.csv
img_dir: data/imgs
data_size: 224
batch_size: 64
num_workers: 0
pin_memory: false
`,
		"callbacks/default.yaml": `model_checkpoint:
  monitor: val/ap
  mode: max
  save_top_k: 1
early_stopping:
  monitor: val/ap
  mode: max
  patience: 15
`,
		"logger/csv.yaml": `csv:
  save_dir: logs
`,
		"experiment/effinet.yaml": `# @package _global_

defaults:
  - override /model: effinet.yaml

name: effinet
model:
  freeze_layers: false
  pos_weight: 10
  lr: 0.0001
  weight_decay: 0.005
`,
		"experiment/freeze_layers.yaml": `# @package _global_

defaults:
  - override /model: effinet.yaml

name: freeze_layers
model:
  freeze_layers: true
  pos_weight: 50
`,
	}
}

// BaseTreeFS returns BaseTree as an in-memory filesystem.
func BaseTreeFS() fstest.MapFS {
	fsys := fstest.MapFS{}
	for path, content := range BaseTree() {
		fsys[path] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

// WriteTree writes store documents under dir. Keys are store-relative
// paths, values are document contents.
func WriteTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for path, content := range files {
		fullPath := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
}

// WriteBaseTree writes the canonical test store into a temp directory and
// returns its path.
func WriteBaseTree(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	WriteTree(t, dir, BaseTree())
	return dir
}
