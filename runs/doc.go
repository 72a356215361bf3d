// Package runs records composed configurations on disk.
//
// Each recorded run gets its own directory under the store's base
// directory, holding a record.yaml (run ID, experiment, overrides,
// fingerprint, timestamp) and a resolved.yaml snapshot of the exact
// configuration handed to the trainer. The fingerprint lets you tell at a
// glance whether two runs used the same resolved configuration.
package runs
