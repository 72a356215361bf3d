package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/expconf"
)

// Training is the typed shape of a resolved training configuration.
type Training struct {
	// Name identifies the experiment.
	Name string `yaml:"name"`

	// Seed makes the run reproducible.
	Seed int `yaml:"seed"`

	Trainer    Trainer    `yaml:"trainer"`
	Model      Model      `yaml:"model"`
	Datamodule Datamodule `yaml:"datamodule"`
}

// Trainer holds epoch bounds and accelerator settings.
type Trainer struct {
	MinEpochs int    `yaml:"min_epochs"`
	MaxEpochs int    `yaml:"max_epochs"`
	GPUs      int    `yaml:"gpus"`
	Precision int    `yaml:"precision"`
	Strategy  string `yaml:"strategy"`
}

// Model holds the model hyperparameters.
type Model struct {
	// FreezeLayers keeps the pretrained backbone fixed and trains only
	// the head.
	FreezeLayers bool `yaml:"freeze_layers"`

	OutputSize int `yaml:"output_size"`

	// PosWeight weights the positive class in the loss to counter class
	// imbalance.
	PosWeight float64 `yaml:"pos_weight"`

	LR          float64 `yaml:"lr"`
	WeightDecay float64 `yaml:"weight_decay"`

	LRSchedulerMinLR    float64 `yaml:"lr_scheduler_min_lr"`
	LRSchedulerFactor   float64 `yaml:"lr_scheduler_factor"`
	LRSchedulerPatience float64 `yaml:"lr_scheduler_patience"`
}

// Datamodule holds the data-loading parameters.
type Datamodule struct {
	TrainPath  string `yaml:"train_path"`
	ValPath    string `yaml:"val_path"`
	ImgDir     string `yaml:"img_dir"`
	DataSize   int    `yaml:"data_size"`
	BatchSize  int    `yaml:"batch_size"`
	NumWorkers int    `yaml:"num_workers"`
	PinMemory  bool   `yaml:"pin_memory"`
}

// Decode converts a resolved configuration into its typed form via a YAML
// round-trip. Keys outside the Training surface are ignored.
func Decode(resolved *expconf.Resolved) (*Training, error) {
	data, err := yaml.Marshal(resolved.AsMap())
	if err != nil {
		return nil, fmt.Errorf("encode resolved config: %w", err)
	}

	var cfg Training
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode resolved config: %w", err)
	}
	return &cfg, nil
}
