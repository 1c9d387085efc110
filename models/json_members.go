package models

import (
	"bytes"
	"encoding/json"
	"maps"
)

// objectMembers splits a JSON object into its members. ok is false for any
// other JSON value.
func objectMembers(b []byte) (members map[string]json.RawMessage, ok bool) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	if err := json.Unmarshal(trimmed, &members); err != nil {
		return nil, false
	}
	return members, true
}

// decodeMembers decodes the members named in fields into their targets and
// returns everything else. A member whose value does not fit its target is
// returned as well and its target stays zero. The result is nil when nothing
// is left over.
func decodeMembers(members map[string]json.RawMessage, fields map[string]any) map[string]json.RawMessage {
	var extra map[string]json.RawMessage
	for key, raw := range members {
		if target, known := fields[key]; known && json.Unmarshal(raw, target) == nil {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[key] = raw
	}
	return extra
}

// encodeMembers marshals v, which must encode as an object, and adds the
// extra members. A member v sets to a non-zero value wins over extra, so a
// field changed after decoding replaces its mistyped original.
func encodeMembers(v any, extra map[string]json.RawMessage) ([]byte, error) {
	encoded, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return encoded, err
	}

	var members map[string]json.RawMessage
	if err = json.Unmarshal(encoded, &members); err != nil {
		return nil, err
	}
	for key, raw := range extra {
		if current, ok := members[key]; ok && !isZeroJSON(current) {
			continue
		}
		members[key] = raw
	}

	return json.Marshal(members)
}

func isZeroJSON(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case `""`, "0", "false", "null", "[]", "{}":
		return true
	}
	return false
}

// withoutMembers returns a copy of extra without keys.
func withoutMembers(extra map[string]json.RawMessage, keys ...string) map[string]json.RawMessage {
	if len(extra) == 0 {
		return extra
	}

	out := maps.Clone(extra)
	for _, key := range keys {
		delete(out, key)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
