package snapshot

// Domain returns the record's candidate domain, or "" when the field is
// missing or not a string.
func (r Record) Domain() string {
	d, _ := r[DomainField].(string)
	return d
}

// Live reports whether the record's A-record indicator is truthy.
func (r Record) Live() bool {
	return truthy(r[ARecordField])
}

// Counts returns the number of seeds and the total number of records.
func (s Snapshot) Counts() (seeds, records int) {
	for _, recs := range s {
		records += len(recs)
	}
	return len(s), records
}

// truthy follows JSON-ish truthiness: null, false, "", 0, [] and {} are false.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	case int:
		return val != 0
	case []any:
		return len(val) > 0
	case []string:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}
