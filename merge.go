package expconf

// mergeTrees merges overlay onto base and returns a new mapping. Neither
// input is mutated. When both sides hold a mapping at the same key the
// mappings merge recursively; any other combination (scalars, lists, or a
// type mismatch between the two sides) is resolved by the overlay value
// replacing the base value wholesale.
func mergeTrees(base, overlay map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		out[k] = cloneValue(v)
	}
	for k, v := range overlay {
		baseMap, baseOK := out[k].(map[string]any)
		overlayMap, overlayOK := v.(map[string]any)
		if baseOK && overlayOK {
			out[k] = mergeTrees(baseMap, overlayMap)
			continue
		}
		out[k] = cloneValue(v)
	}
	return out
}
