// Package schema provides a typed view of the resolved training
// configuration and validates it against a JSON Schema.
//
// The field surface mirrors what the trainer consumes: run identity
// (name, seed), trainer bounds and distribution settings, model
// hyperparameters, and data-loading parameters.
//
// Example usage:
//
//	resolved, _ := composer.Compose("effinet")
//
//	if err := schema.Validate(resolved); err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg, _ := schema.Decode(resolved)
//	fmt.Println(cfg.Model.LR)
package schema
