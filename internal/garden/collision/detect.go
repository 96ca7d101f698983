package collision

// Options alters detection globally.
type Options struct {
	Disabled bool // Debug switch: nothing collides
}

// collides applies the exemption rules and the overlap test to one pair.
func collides(c, other Entry) bool {
	if other.ID == c.ID {
		return false
	}
	if Exempt(c.Type, other.Type) {
		return false
	}
	return c.Rect.Overlaps(other.Rect)
}

// Detected reports whether c overlaps any non-exempt collider in the registry.
func Detected(reg *Registry, c Entry, opts Options) bool {
	if opts.Disabled || c.Type == TypeNone {
		return false
	}
	for _, other := range reg.Entries() {
		if collides(c, other) {
			return true
		}
	}
	return false
}

// Detect returns every non-exempt collider in the registry that c overlaps,
// in ascending id order.
func Detect(reg *Registry, c Entry, opts Options) []Entry {
	if opts.Disabled || c.Type == TypeNone {
		return nil
	}
	return DetectAmong(reg.Entries(), c, opts)
}

// DetectAmong is Detect over a caller-supplied subset.
func DetectAmong(entries []Entry, c Entry, opts Options) []Entry {
	if opts.Disabled || c.Type == TypeNone {
		return nil
	}
	var hits []Entry
	for _, other := range entries {
		if collides(c, other) {
			hits = append(hits, other)
		}
	}
	return hits
}
