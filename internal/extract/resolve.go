package extract

import "github.com/goldyfruit/udf-inventory/internal/types"

// Hostname returns the first present value among prefs, in order. Fields
// that cannot name a host are skipped with a warning.
func (e *Extractor) Hostname(rec types.Component, prefs []Field) (string, bool) {
	for _, pref := range prefs {
		if !pref.HostnameSource() {
			e.log.Warn("invalid hostname preference skipped", e.log.Args("preference", pref.String()))
			continue
		}
		value, ok := e.Extract(pref, rec)
		if !ok {
			continue
		}
		if name, _ := value.(string); name != "" {
			return name, true
		}
	}
	return "", false
}

// Group derives the group label for one dimension.
func (e *Extractor) Group(rec types.Component, dim Dimension) (string, bool) {
	switch dim {
	case DimensionOS:
		return e.OSNameForGroup(rec)
	default:
		e.log.Warn("invalid group name specified", e.log.Args("group", dim.String()))
		return "", false
	}
}
