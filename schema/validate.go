// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"fmt"

	"github.com/dacolabs/spdx/validation"
)

// Validate re-runs every declared check over an already-typed entity
// graph: required presence, value constraints, enum membership, minimum
// element counts, and nested entities recursively. Parse output always
// validates; the point of Validate is graphs assembled or mutated
// directly in Go.
func Validate(def *Def, entity any) error {
	v := validator{maxDepth: DefaultMaxDepth}
	return v.entity(def, entity, "", 0)
}

type validator struct {
	maxDepth int
}

func (v validator) entity(def *Def, e any, path string, depth int) error {
	if depth > v.maxDepth {
		return &validation.Error{
			Kind:   validation.ErrTypeMismatch,
			Path:   path,
			Detail: fmt.Sprintf("nesting exceeds the depth limit of %d", v.maxDepth),
		}
	}
	for _, f := range def.Fields {
		fp := childPath(path, f.Wire())
		gv, present := f.Get(e)
		if !present {
			if f.Required {
				return &validation.Error{
					Kind:   validation.ErrMissingRequiredField,
					Path:   fp,
					Detail: fmt.Sprintf("%s requires %q", def.Name, f.Wire()),
				}
			}
			continue
		}
		if gv == nil {
			// An explicit null, legal only where parse accepts one.
			if !f.Required && f.Value.Kind == KindString {
				continue
			}
			return typeMismatch(fp, gv, "field does not accept null")
		}
		if err := v.value(f.Value, gv, fp, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (v validator) value(val Value, gv any, path string, depth int) error {
	switch val.Kind {
	case KindConstrained:
		s, ok := gv.(string)
		if !ok {
			return typeMismatch(path, gv, "expected a string")
		}
		if err := Check(val.Constraint, s); err != nil {
			return &validation.Error{
				Kind:   validation.ErrConstraintViolation,
				Path:   path,
				Value:  s,
				Detail: err.Error(),
			}
		}

	case KindEnum:
		s, ok := gv.(string)
		if !ok {
			return typeMismatch(path, gv, "expected a string")
		}
		if _, ok := val.Enum.Resolve(s); !ok {
			return unknownEnum(path, val.Enum, s)
		}

	case KindNested:
		return v.entity(val.Def, gv, path, depth)

	case KindSeq:
		items, ok := gv.([]any)
		if !ok {
			return typeMismatch(path, gv, "expected an array")
		}
		if len(items) < val.MinItems {
			return &validation.Error{
				Kind:   validation.ErrConstraintViolation,
				Path:   path,
				Detail: fmt.Sprintf("requires at least %d element(s)", val.MinItems),
			}
		}
		for i, item := range items {
			ip := indexPath(path, i)
			if item == nil {
				return typeMismatch(ip, item, "array elements must not be null")
			}
			if err := v.value(*val.Elem, item, ip, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
