// Package expconf composes experiment configurations for ML training runs.
//
// A configuration store is a directory tree with a root document and one
// subdirectory per category (trainer, model, datamodule, ...). The root
// document's defaults list names which base document each category starts
// from. An experiment document layers on top of that baseline: it may swap
// out default selections and override individual values. Composition
// deep-merges everything, in order, into a single immutable Resolved
// configuration that an external trainer consumes.
//
// The package is organized into subpackages by domain:
//
//   - errors: composition error taxonomy and CLI-friendly wrapping
//   - schema: typed view of the training config plus JSON Schema validation
//   - runs: on-disk registry of composed runs
//   - cli: cobra commands for the expconf binary
//   - testutil: test fixtures and helpers
//
// # Quick Start
//
//	store := expconf.NewStore("configs")
//	composer := expconf.NewComposer(expconf.ComposerConfig{Store: store})
//
//	resolved, err := composer.Compose("effinet", "trainer.gpus=4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, _ := resolved.YAML()
//	fmt.Print(string(out))
//
// Composition is deterministic: the same store, experiment, and overrides
// always produce byte-identical YAML output.
//
// See individual package documentation for detailed usage.
package expconf
