package expconf

import (
	"log/slog"

	experrors "github.com/randalmurphal/expconf/errors"
)

// DefaultExperimentCategory is where experiment override documents live.
const DefaultExperimentCategory = "experiment"

// ComposerConfig configures a Composer.
type ComposerConfig struct {
	// Store holds the base configuration tree. Required.
	Store *Store

	// ExperimentCategory is the category containing experiment override
	// documents. Defaults to "experiment".
	ExperimentCategory string

	// Logger receives debug output. Defaults to slog.Default().
	Logger *slog.Logger
}

// Composer produces one fully-resolved configuration per invocation by
// layering an experiment's overrides on top of the store's baseline
// defaults. Composition is a pure transformation: the store documents are
// never mutated and the same inputs always yield the same output.
type Composer struct {
	config ComposerConfig
}

// NewComposer creates a composer over the given store.
func NewComposer(cfg ComposerConfig) *Composer {
	if cfg.ExperimentCategory == "" {
		cfg.ExperimentCategory = DefaultExperimentCategory
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Composer{config: cfg}
}

// Compose resolves the named experiment on top of the baseline defaults
// and applies any command-line style dotted overrides last. An empty
// experiment name resolves the baseline alone.
//
// Any failure aborts composition with no partial output.
func (c *Composer) Compose(experiment string, overrides ...string) (*Resolved, error) {
	log := c.config.Logger
	log.Debug("composing configuration", "experiment", experiment, "overrides", len(overrides))

	root, err := c.config.Store.Root()
	if err != nil {
		return nil, err
	}

	selections := append([]Selection(nil), root.Defaults...)

	var expDoc *Document
	if experiment != "" {
		expDoc, err = c.config.Store.Load(c.config.ExperimentCategory, experiment)
		if err != nil {
			return nil, err
		}
		selections, err = applyDefaultOverrides(selections, expDoc.Defaults, c.config.Store)
		if err != nil {
			return nil, err
		}
	}

	tree := make(map[string]any)
	for _, sel := range selections {
		doc, err := c.config.Store.Load(sel.Category, sel.Name)
		if err != nil {
			return nil, err
		}
		log.Debug("applying default selection", "category", sel.Category, "name", sel.Name, "global", doc.IsGlobal())
		tree = placeAndMerge(tree, doc.Body, sel.Category, doc.IsGlobal())
	}

	// The root document's own keys land at the root, after its defaults.
	tree = mergeTrees(tree, root.Body)

	// Experiment documents merge at root scope unless a package marker
	// says otherwise.
	if expDoc != nil {
		global := expDoc.Package == "" || expDoc.IsGlobal()
		tree = placeAndMerge(tree, expDoc.Body, c.config.ExperimentCategory, global)
	}

	for _, expr := range overrides {
		o, err := ParseOverride(expr)
		if err != nil {
			return nil, err
		}
		log.Debug("applying override", "path", o.Path)
		Tree(tree).Set(o.Path, o.Value)
	}

	return newResolved(tree), nil
}

// applyDefaultOverrides layers an experiment's defaults list onto the
// baseline. An "override /category" entry replaces the baseline selection
// for that category in place; overriding a category with no baseline
// selection is an unknown-category failure. A plain entry replaces an
// existing selection or appends a new one for a category the store knows.
func applyDefaultOverrides(baseline, overrides []Selection, store *Store) ([]Selection, error) {
	out := append([]Selection(nil), baseline...)

	for _, sel := range overrides {
		idx := -1
		for i, base := range out {
			if base.Category == sel.Category {
				idx = i
				break
			}
		}

		if sel.Override {
			if idx < 0 {
				return nil, &experrors.UnknownCategoryError{Category: sel.Category}
			}
			out[idx].Name = sel.Name
			continue
		}

		if idx >= 0 {
			out[idx].Name = sel.Name
			continue
		}
		if !store.HasCategory(sel.Category) {
			return nil, &experrors.UnknownCategoryError{Category: sel.Category}
		}
		out = append(out, Selection{Category: sel.Category, Name: sel.Name})
	}

	return out, nil
}

// placeAndMerge merges body into tree, either at the root (global scope)
// or nested under the category key.
func placeAndMerge(tree map[string]any, body Tree, category string, global bool) map[string]any {
	if global {
		return mergeTrees(tree, body)
	}
	return mergeTrees(tree, map[string]any{category: map[string]any(body)})
}
