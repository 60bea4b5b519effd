package resource

import (
	"strconv"
	"strings"

	"github.com/ersonp/orgflow/internal/domain/entities"
)

// Options is the normalized form of caller-supplied request options, built
// once at the boundary. The concrete variants are Empty, Identifier, Filter
// and Ref; the resolver matches over them exhaustively.
type Options interface {
	isOptions()
}

// Empty requests all records of the target kind.
type Empty struct{}

// Identifier requests the single record with this id.
type Identifier struct {
	ID int
}

// Filter carries a plain parameter mapping with normalized keys.
type Filter struct {
	Values map[string]any
}

// Ref carries an already-fetched domain entity passed back in as options.
type Ref struct {
	Object entities.Object
}

func (Empty) isOptions()      {}
func (Identifier) isOptions() {}
func (Filter) isOptions()     {}
func (Ref) isOptions()        {}

// Parse normalizes raw caller input into an Options variant. Accepted inputs:
// nil, an integer or numeric string, a string-keyed mapping, or a domain
// entity. A mapping carrying a numeric "id" key collapses to Identifier,
// taking priority over any association interpretation.
func Parse(v any) (Options, error) {
	switch val := v.(type) {
	case nil:
		return Empty{}, nil
	case entities.Object:
		return Ref{Object: val}, nil
	case map[string]any:
		return parseMap(val)
	case map[string]string:
		m := make(map[string]any, len(val))
		for k, s := range val {
			m[k] = s
		}
		return parseMap(m)
	default:
		if id, ok := toID(v); ok {
			return Identifier{ID: id}, nil
		}
		return nil, optionsErrorf("", "unsupported options type %T", v)
	}
}

func parseMap(m map[string]any) (Options, error) {
	if len(m) == 0 {
		return Empty{}, nil
	}
	values := make(map[string]any, len(m))
	for k, v := range m {
		values[normalizeKey(k)] = v
	}
	if raw, ok := values["id"]; ok {
		id, ok := toID(raw)
		if !ok {
			return nil, optionsErrorf("", "id value %v is not a valid identifier", raw)
		}
		return Identifier{ID: id}, nil
	}
	return Filter{Values: values}, nil
}

// normalizeKey canonicalizes a parameter key regardless of how the caller
// spelled it.
func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// toID interprets a scalar as a record identifier: a bare integer, a whole
// float (as produced by JSON decoding) or a numeric string.
func toID(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, n > 0
	case int64:
		return int(n), n > 0
	case float64:
		if n == float64(int(n)) {
			return int(n), n > 0
		}
		return 0, false
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return id, id > 0
	default:
		return 0, false
	}
}
