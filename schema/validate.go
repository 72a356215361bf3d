package schema

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/randalmurphal/expconf"
)

// trainingSchema constrains the fields the trainer consumes. Keys outside
// this surface are allowed: callbacks and logger configuration pass
// through to the trainer untouched.
const trainingSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "seed", "trainer", "model", "datamodule"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "seed": {"type": "integer"},
    "trainer": {
      "type": "object",
      "required": ["max_epochs"],
      "properties": {
        "min_epochs": {"type": "integer", "minimum": 0},
        "max_epochs": {"type": "integer", "minimum": 1},
        "gpus": {"type": "integer", "minimum": 0},
        "precision": {"enum": [16, 32, 64]},
        "strategy": {"type": "string"}
      }
    },
    "model": {
      "type": "object",
      "required": ["lr"],
      "properties": {
        "freeze_layers": {"type": "boolean"},
        "output_size": {"type": "integer", "minimum": 1},
        "pos_weight": {"type": "number", "exclusiveMinimum": 0},
        "lr": {"type": "number", "exclusiveMinimum": 0},
        "weight_decay": {"type": "number", "minimum": 0},
        "lr_scheduler_min_lr": {"type": "number", "minimum": 0},
        "lr_scheduler_factor": {"type": "number", "minimum": 0},
        "lr_scheduler_patience": {"type": "number", "minimum": 0}
      }
    },
    "datamodule": {
      "type": "object",
      "properties": {
        "train_path": {"type": "string"},
        "val_path": {"type": "string"},
        "img_dir": {"type": "string"},
        "data_size": {"type": "integer", "minimum": 1},
        "batch_size": {"type": "integer", "minimum": 1},
        "num_workers": {"type": "integer", "minimum": 0},
        "pin_memory": {"type": "boolean"}
      }
    }
  }
}`

var compiled = jsonschema.MustCompileString("training.schema.json", trainingSchema)

// ValidationError reports the first constraint a resolved configuration
// violates.
type ValidationError struct {
	// Path is the instance location, e.g. "/model/lr".
	Path string

	// Message describes the violated constraint.
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "invalid configuration: " + e.Message
	}
	return fmt.Sprintf("invalid configuration at %s: %s", e.Path, e.Message)
}

// Validate checks a resolved configuration against the training schema.
func Validate(resolved *expconf.Resolved) error {
	// Round-trip through JSON so numbers and nesting match what the
	// validator expects.
	data, err := json.Marshal(resolved.AsMap())
	if err != nil {
		return fmt.Errorf("encode resolved config: %w", err)
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("decode resolved config: %w", err)
	}

	if err := compiled.Validate(instance); err != nil {
		return toValidationError(err)
	}
	return nil
}

// toValidationError converts a jsonschema error into the package's own
// type, picking the deepest cause for a usable message.
func toValidationError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &ValidationError{Message: err.Error()}
	}

	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	return &ValidationError{
		Path:    leaf.InstanceLocation,
		Message: leaf.Message,
	}
}
