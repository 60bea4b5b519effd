package resource

import (
	"encoding/json"
	"slices"
	"sort"

	"github.com/ersonp/orgflow/internal/domain/entities"
)

// Resolve turns caller-supplied options into the final request parameter
// mapping for the target kind. It is the one place reconciling raw ids,
// filter maps and fetched entities into one canonical request shape, so the
// per-kind CRUD methods stay uniform one-liners.
func Resolve(target entities.Kind, options any) (map[string]any, error) {
	desc, ok := Lookup(target)
	if !ok {
		return nil, optionsErrorf(target, "unknown resource kind")
	}

	opts, err := Parse(options)
	if err != nil {
		if oe, ok := err.(*OptionsError); ok && oe.Kind == "" {
			oe.Kind = target
		}
		return nil, err
	}

	switch o := opts.(type) {
	case Empty:
		return map[string]any{}, nil
	case Identifier:
		return map[string]any{"id": o.ID}, nil
	case Ref:
		rule, ok := RuleFor(target, o.Object.Kind())
		if !ok {
			return nil, optionsErrorf(target, "no association from %s", o.Object.Kind())
		}
		return map[string]any{rule.Field: rule.Value(o.Object)}, nil
	case Filter:
		return resolveFilter(desc, o.Values)
	default:
		return nil, optionsErrorf(target, "unsupported options variant %T", opts)
	}
}

// resolveFilter validates a plain parameter mapping. It passes through when
// shaped like the target kind itself or like one of the target's association
// parameters; a mapping shaped like an associated source entity's field dump
// is converted through the association rule instead.
func resolveFilter(desc Descriptor, values map[string]any) (map[string]any, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	matches := func(fields []string) bool {
		for _, k := range keys {
			if !slices.Contains(fields, k) {
				return false
			}
		}
		return true
	}

	if matches(desc.Fields) {
		return values, nil
	}
	if matches(associationFields(desc.Kind)) {
		return values, nil
	}

	// Entity-shaped mapping: the field dump of a source kind with a rule for
	// this target resolves as if the entity itself had been passed. Sources
	// are tried in a fixed order so ambiguous shapes resolve the same way on
	// every call.
	sources := associationSources(desc.Kind)
	slices.Sort(sources)
	for _, source := range sources {
		srcDesc, ok := Lookup(source)
		if !ok || !matches(srcDesc.Fields) {
			continue
		}
		obj, err := objectFromMap(source, values)
		if err != nil {
			return nil, err
		}
		rule, _ := RuleFor(desc.Kind, source)
		return map[string]any{rule.Field: rule.Value(obj)}, nil
	}

	return nil, optionsErrorf(desc.Kind, "unrecognized parameters %v", keys)
}

// ValidateMutation normalizes options for a create or update request:
// either a plain mapping or an instance of the target kind itself.
func ValidateMutation(target entities.Kind, options any) (map[string]any, error) {
	switch val := options.(type) {
	case entities.Object:
		if val.Kind() != target {
			return nil, optionsErrorf(target, "cannot send a %s entity", val.Kind())
		}
		return val.ToParams(), nil
	case map[string]any:
		return normalizeKeys(val), nil
	case map[string]string:
		m := make(map[string]any, len(val))
		for k, s := range val {
			m[k] = s
		}
		return normalizeKeys(m), nil
	default:
		return nil, optionsErrorf(target, "unsupported options type %T", options)
	}
}

// ExtractID pulls a record identifier out of options the same way Resolve
// interprets identifiers: a bare scalar, a mapping's id key, or the entity's
// own id.
func ExtractID(target entities.Kind, options any) (int, error) {
	opts, err := Parse(options)
	if err != nil {
		return 0, optionsErrorf(target, "no valid id in options")
	}
	switch o := opts.(type) {
	case Identifier:
		return o.ID, nil
	case Ref:
		if id := o.Object.Identifier(); id != 0 {
			return id, nil
		}
	}
	return 0, optionsErrorf(target, "no valid id in options")
}

func normalizeKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[normalizeKey(k)] = v
	}
	return out
}

// objectFromMap decodes a normalized parameter mapping into a typed entity of
// the given kind.
func objectFromMap(kind entities.Kind, values map[string]any) (entities.Object, error) {
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, optionsErrorf(kind, "unencodable parameter values: %v", err)
	}
	obj, err := Decode(kind, raw)
	if err != nil {
		return nil, optionsErrorf(kind, "parameters do not form a %s: %v", kind, err)
	}
	return obj, nil
}
