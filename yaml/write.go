// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package yaml

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/spdx/schema"
)

// node builds the yaml.Node tree for an emitted value. Going through
// nodes rather than yaml.Marshal keeps member order and pins every
// string to !!str, so scalars like "1.0", "NO", or timestamps come back
// as strings when re-read.
func node(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case *schema.Object:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, m := range t.Members {
			if err := appendMember(n, m.Name, m.Value); err != nil {
				return nil, err
			}
		}
		return n, nil
	case map[string]any:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range slices.Sorted(maps.Keys(t)) {
			if err := appendMember(n, k, t[k]); err != nil {
				return nil, err
			}
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, ev := range t {
			en, err := node(ev)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, en)
		}
		return n, nil
	case string:
		n := &yaml.Node{}
		n.SetString(t)
		return n, nil
	case bool:
		return scalar("!!bool", strconv.FormatBool(t)), nil
	case int:
		return scalar("!!int", strconv.Itoa(t)), nil
	case int64:
		return scalar("!!int", strconv.FormatInt(t, 10)), nil
	case float64:
		return scalar("!!float", strconv.FormatFloat(t, 'g', -1, 64)), nil
	case json.Number:
		if _, err := t.Int64(); err == nil {
			return scalar("!!int", t.String()), nil
		}
		return scalar("!!float", t.String()), nil
	case nil:
		return scalar("!!null", "null"), nil
	default:
		return nil, fmt.Errorf("yaml: cannot render %T", v)
	}
}

func appendMember(n *yaml.Node, name string, v any) error {
	key := &yaml.Node{}
	key.SetString(name)
	val, err := node(v)
	if err != nil {
		return err
	}
	n.Content = append(n.Content, key, val)
	return nil
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
