package resource

import "github.com/ersonp/orgflow/internal/domain/entities"

// Rule describes how a source entity becomes a filter parameter for a target
// kind: the parameter field name plus an accessor producing the value. The
// accessor is a function value so the slugified-name case is just a different
// accessor.
type Rule struct {
	Field string
	Value func(entities.Object) any
}

type kindPair struct {
	target entities.Kind
	source entities.Kind
}

func byID(o entities.Object) any { return o.Identifier() }

func byRoleName(o entities.Object) any {
	return Slugify(o.(*entities.Role).Name)
}

// associations enumerates every (target, source) pair that yields a valid
// filter parameter. Any pair absent here is unresolvable.
var associations = map[kindPair]Rule{
	{entities.KindRole, entities.KindCircle}:          {Field: "circle_id", Value: byID},
	{entities.KindRole, entities.KindPerson}:          {Field: "person_id", Value: byID},
	{entities.KindPerson, entities.KindCircle}:        {Field: "circle_id", Value: byID},
	{entities.KindPerson, entities.KindRole}:          {Field: "role", Value: byRoleName},
	{entities.KindProject, entities.KindCircle}:       {Field: "circle_id", Value: byID},
	{entities.KindProject, entities.KindPerson}:       {Field: "person_id", Value: byID},
	{entities.KindMetric, entities.KindCircle}:        {Field: "circle_id", Value: byID},
	{entities.KindMetric, entities.KindRole}:          {Field: "role_id", Value: byID},
	{entities.KindChecklistItem, entities.KindCircle}: {Field: "circle_id", Value: byID},
	{entities.KindChecklistItem, entities.KindRole}:   {Field: "role_id", Value: byID},
	{entities.KindAction, entities.KindCircle}:        {Field: "circle_id", Value: byID},
	{entities.KindAction, entities.KindPerson}:        {Field: "person_id", Value: byID},
	{entities.KindTrigger, entities.KindCircle}:       {Field: "circle_id", Value: byID},
	{entities.KindTrigger, entities.KindPerson}:       {Field: "person_id", Value: byID},
}

// RuleFor returns the association rule for filtering target records by a
// source entity.
func RuleFor(target, source entities.Kind) (Rule, bool) {
	r, ok := associations[kindPair{target: target, source: source}]
	return r, ok
}

// associationFields returns every parameter field name usable to filter the
// target kind.
func associationFields(target entities.Kind) []string {
	var fields []string
	for pair, rule := range associations {
		if pair.target == target {
			fields = append(fields, rule.Field)
		}
	}
	return fields
}

// associationSources returns the source kinds with a rule for the target kind.
func associationSources(target entities.Kind) []entities.Kind {
	var sources []entities.Kind
	for pair := range associations {
		if pair.target == target {
			sources = append(sources, pair.source)
		}
	}
	return sources
}
