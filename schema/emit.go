// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"bytes"
	"encoding/json"
)

// Options controls emission. The zero value is the default policy: unset
// fields are omitted and member names are the wire aliases.
type Options struct {
	// IncludeUnset emits unset optional fields as explicit nulls
	// instead of omitting them.
	IncludeUnset bool

	// LogicalNames emits logical field names instead of wire aliases.
	LogicalNames bool
}

// Member is one name/value pair of an emitted Object.
type Member struct {
	Name  string
	Value any
}

// Object is an emitted JSON object whose member order is preserved. Its
// values are strings, bools, ints, nil, nested *Objects, []any, or
// map[string]any for free-form objects.
type Object struct {
	Members []Member
}

// Get returns the value of the named member.
func (o *Object) Get(name string) (any, bool) {
	for _, m := range o.Members {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

// Names returns the member names in emission order.
func (o *Object) Names() []string {
	names := make([]string, len(o.Members))
	for i, m := range o.Members {
		names[i] = m.Name
	}
	return names
}

// MarshalJSON writes the members in order with standard encoding/json
// value encoding.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(m.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Emit renders a typed entity as an ordered JSON value. Member order is
// exactly the definition's declared field order, so output is
// deterministic. Emit performs no validation and cannot fail; it assumes
// a graph produced by Parse, the constructors, or one that Validate
// accepts.
func Emit(def *Def, entity any, opts Options) *Object {
	obj := &Object{Members: make([]Member, 0, len(def.Fields))}
	for _, f := range def.Fields {
		name := f.Wire()
		if opts.LogicalNames {
			name = f.Name
		}
		gv, present := f.Get(entity)
		if !present {
			if opts.IncludeUnset {
				obj.Members = append(obj.Members, Member{Name: name, Value: nil})
			}
			continue
		}
		obj.Members = append(obj.Members, Member{Name: name, Value: emitValue(f.Value, gv, opts)})
	}
	return obj
}

func emitValue(val Value, gv any, opts Options) any {
	switch val.Kind {
	case KindNested:
		return Emit(val.Def, gv, opts)
	case KindSeq:
		items := gv.([]any)
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = emitValue(*val.Elem, item, opts)
		}
		return out
	}
	return gv
}
