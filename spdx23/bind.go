// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package spdx23

import "github.com/dacolabs/spdx"

// Helpers converting between the engines' ground values (string, bool,
// int, nil, entity pointers, []any) and the typed struct fields. The Set
// and Get closures in the definition tables are built from these.

func members[T ~string](vals ...T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

func optString(v any) spdx.Opt[string] {
	if v == nil {
		return spdx.Null[string]()
	}
	return spdx.Some(v.(string))
}

func optBool(v any) spdx.Opt[bool] {
	return spdx.Some(v.(bool))
}

func optInt(v any) spdx.Opt[int] {
	return spdx.Some(v.(int))
}

func optEnum[T ~string](v any) spdx.Opt[T] {
	return spdx.Some(T(v.(string)))
}

func fromOpt[T any](o spdx.Opt[T]) (any, bool) {
	if o.IsNull() {
		return nil, true
	}
	if v, ok := o.Value(); ok {
		return v, true
	}
	return nil, false
}

func fromOptEnum[T ~string](o spdx.Opt[T]) (any, bool) {
	if o.IsNull() {
		return nil, true
	}
	if v, ok := o.Value(); ok {
		return string(v), true
	}
	return nil, false
}

func strSlice(v any) []string {
	items := v.([]any)
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.(string)
	}
	return out
}

func enumSlice[T ~string](v any) []T {
	items := v.([]any)
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = T(item.(string))
	}
	return out
}

func entitySlice[T any](v any) []T {
	items := v.([]any)
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = *item.(*T)
	}
	return out
}

func objSlice(v any) []map[string]any {
	items := v.([]any)
	out := make([]map[string]any, len(items))
	for i, item := range items {
		out[i] = item.(map[string]any)
	}
	return out
}

func fromStrs(s []string) (any, bool) {
	if s == nil {
		return nil, false
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out, true
}

func fromEnums[T ~string](s []T) (any, bool) {
	if s == nil {
		return nil, false
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = string(v)
	}
	return out, true
}

func fromEntities[T any](s []T) (any, bool) {
	if s == nil {
		return nil, false
	}
	out := make([]any, len(s))
	for i := range s {
		out[i] = &s[i]
	}
	return out, true
}

func fromObjs(s []map[string]any) (any, bool) {
	if s == nil {
		return nil, false
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out, true
}
