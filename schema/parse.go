// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dacolabs/spdx/validation"
)

// DefaultMaxDepth bounds entity nesting during a parse. The SPDX schemas
// are nowhere near this deep; the guard exists so a hostile value cannot
// recurse unboundedly.
const DefaultMaxDepth = 32

// Parse builds a typed entity graph from a generic JSON value (the maps,
// slices, and scalars produced by a JSON or YAML tokenizer). It validates
// as it goes and stops at the first failure, returning a single
// *validation.Error. Unknown keys in input objects are ignored.
func Parse(def *Def, v any) (any, error) {
	return ParseDepth(def, v, DefaultMaxDepth)
}

// ParseDepth is Parse with an explicit nesting limit.
func ParseDepth(def *Def, v any, maxDepth int) (any, error) {
	p := parser{maxDepth: maxDepth}
	return p.entity(def, v, "", 0)
}

type parser struct {
	maxDepth int
}

func (p parser) entity(def *Def, v any, path string, depth int) (any, error) {
	if depth > p.maxDepth {
		return nil, &validation.Error{
			Kind:   validation.ErrTypeMismatch,
			Path:   path,
			Detail: fmt.Sprintf("nesting exceeds the depth limit of %d", p.maxDepth),
		}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, typeMismatch(path, v, def.Name+" must be a JSON object")
	}

	e := def.New()
	for _, f := range def.Fields {
		fp := childPath(path, f.Wire())
		raw, present := obj[f.Wire()]
		if !present {
			if f.Required {
				return nil, &validation.Error{
					Kind:   validation.ErrMissingRequiredField,
					Path:   fp,
					Detail: fmt.Sprintf("%s requires %q", def.Name, f.Wire()),
				}
			}
			continue
		}
		if raw == nil {
			// Only optional plain strings may be set to null; it is
			// recorded as distinct from unset.
			if !f.Required && f.Value.Kind == KindString {
				f.Set(e, nil)
				continue
			}
			if f.Required {
				return nil, typeMismatch(fp, raw, "required field must not be null")
			}
			return nil, typeMismatch(fp, raw, "field does not accept null")
		}
		gv, err := p.value(f.Value, raw, fp, depth+1)
		if err != nil {
			return nil, err
		}
		f.Set(e, gv)
	}
	return e, nil
}

func (p parser) value(val Value, raw any, path string, depth int) (any, error) {
	switch val.Kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, typeMismatch(path, raw, "expected a string")
		}
		return s, nil

	case KindBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, typeMismatch(path, raw, "expected a boolean")
		}
		return b, nil

	case KindInt:
		return intValue(raw, path)

	case KindConstrained:
		s, ok := raw.(string)
		if !ok {
			return nil, typeMismatch(path, raw, "expected a string")
		}
		if err := Check(val.Constraint, s); err != nil {
			return nil, &validation.Error{
				Kind:   validation.ErrConstraintViolation,
				Path:   path,
				Value:  s,
				Detail: err.Error(),
			}
		}
		return s, nil

	case KindEnum:
		s, ok := raw.(string)
		if !ok {
			return nil, typeMismatch(path, raw, "expected a string")
		}
		member, ok := val.Enum.Resolve(s)
		if !ok {
			return nil, unknownEnum(path, val.Enum, s)
		}
		return member, nil

	case KindNested:
		return p.entity(val.Def, raw, path, depth)

	case KindSeq:
		items, ok := raw.([]any)
		if !ok {
			return nil, typeMismatch(path, raw, "expected an array")
		}
		if len(items) < val.MinItems {
			return nil, &validation.Error{
				Kind:   validation.ErrConstraintViolation,
				Path:   path,
				Detail: fmt.Sprintf("requires at least %d element(s)", val.MinItems),
			}
		}
		out := make([]any, len(items))
		for i, item := range items {
			ip := indexPath(path, i)
			if item == nil {
				return nil, typeMismatch(ip, item, "array elements must not be null")
			}
			gv, err := p.value(*val.Elem, item, ip, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = gv
		}
		return out, nil

	case KindAnyObject:
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, typeMismatch(path, raw, "expected an object")
		}
		return m, nil
	}
	panic(fmt.Sprintf("schema: unknown value kind %d", val.Kind))
}

// intValue accepts the integral forms the tokenizers produce: json.Number
// from the JSON reader, int from the YAML reader, and float64 for values
// decoded without number preservation.
func intValue(raw any, path string) (any, error) {
	switch n := raw.(type) {
	case json.Number:
		i, err := strconv.Atoi(n.String())
		if err != nil {
			return nil, typeMismatch(path, raw, "expected an integer")
		}
		return i, nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		i := int(n)
		if float64(i) != n {
			return nil, typeMismatch(path, raw, "expected an integer")
		}
		return i, nil
	}
	return nil, typeMismatch(path, raw, "expected an integer")
}

func typeMismatch(path string, raw any, detail string) *validation.Error {
	return &validation.Error{
		Kind:   validation.ErrTypeMismatch,
		Path:   path,
		Value:  raw,
		Detail: fmt.Sprintf("%s, got %s", detail, jsonTypeName(raw)),
	}
}

func unknownEnum(path string, e *Enum, raw string) *validation.Error {
	return &validation.Error{
		Kind:   validation.ErrUnknownEnumValue,
		Path:   path,
		Value:  raw,
		Detail: fmt.Sprintf("%q is not a member of %s (%s)", raw, e.Name(), e.list()),
	}
}

func childPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int, int64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	return fmt.Sprintf("%T", v)
}
