package sections

// Compose resolves the final ordered list of visible sections for one request.
//
// Visibility: a section is visible unless the merged visibility map sets it to
// false, where request entries override profile defaults and profile defaults
// override the catalog's implicit true.
//
// Order: sections named in requestedOrder come first, in the given order;
// remaining visible sections are appended in catalog order, so a partial order
// never silently drops a section.
//
// Compose is a pure function over its inputs. Callers must pass requestedOrder
// entries already validated against the catalog; unknown identifiers are a
// validation failure upstream, never handled here.
func Compose(requestedOrder []string, requestedVisibility map[string]bool, profileVisibility map[string]bool) []ID {
	visible := func(id ID) bool {
		if v, ok := requestedVisibility[string(id)]; ok {
			return v
		}
		if v, ok := profileVisibility[string(id)]; ok {
			return v
		}
		return true
	}

	placed := make(map[ID]bool, len(defaultOrder))
	out := make([]ID, 0, len(defaultOrder))

	for _, s := range requestedOrder {
		id := ID(s)
		if placed[id] || !visible(id) {
			continue
		}
		placed[id] = true
		out = append(out, id)
	}

	for _, id := range defaultOrder {
		if placed[id] || !visible(id) {
			continue
		}
		placed[id] = true
		out = append(out, id)
	}

	return out
}
