package lookup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/clbanning/mxj/v2"
)

// Probe names one place a provider has been seen to put its record list.
// Path leads to the container; Items is the key inside the container that
// holds the list, or empty when the container is the list itself. Count,
// when set, is the container key declaring how many records exist.
//
// A probe with an empty Path and empty Items matches only a top-level
// sequence.
type Probe struct {
	Name  string
	Path  []string
	Items string
	Count string
}

func (p Probe) isRoot() bool {
	return len(p.Path) == 0 && p.Items == ""
}

// Normalizer extracts candidate records from a provider body by trying its
// probes in order.
type Normalizer struct {
	probes []Probe
	fields map[string]struct{}
}

// NewNormalizer builds a Normalizer. Keys listed in fields are copied into
// Record.Fields; with no fields every key is treated as known.
func NewNormalizer(fields []string, probes ...Probe) *Normalizer {
	n := &Normalizer{probes: cloneProbes(probes)}
	if len(fields) > 0 {
		n.fields = make(map[string]struct{}, len(fields))
		for _, f := range fields {
			n.fields[f] = struct{}{}
		}
	}
	return n
}

// WithProbes returns a copy of n that also tries probes, after the existing ones.
func (n *Normalizer) WithProbes(probes ...Probe) *Normalizer {
	out := &Normalizer{fields: n.fields, probes: cloneProbes(n.probes)}
	out.probes = append(out.probes, probes...)
	return out
}

// Probes returns the probe order.
func (n *Normalizer) Probes() []Probe {
	return cloneProbes(n.probes)
}

// Normalize parses raw and returns its records in provider order.
func (n *Normalizer) Normalize(raw RawResponse) ([]Record, error) {
	tree, err := parseTree(raw)
	if err != nil {
		return nil, &NormalizationError{
			Kind:        Malformed,
			ContentType: raw.ContentType,
			Raw:         raw.Body,
			Cause:       err,
		}
	}

	var pending error
	for _, p := range n.probes {
		items, matched, err := p.extract(tree)
		if errors.Is(err, errItemsAbsent) {
			// A deeper probe may still hold the list the count refers to.
			if pending == nil {
				pending = err
			}
			continue
		}
		if err != nil {
			return nil, n.unknownShape(raw, tree, err.Error())
		}
		if !matched {
			continue
		}

		records := make([]Record, 0, len(items))
		for i, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, n.unknownShape(raw, tree, fmt.Sprintf("probe %q: item %d is %T, not an object", p.Name, i, item))
			}
			records = append(records, n.record(obj))
		}
		return records, nil
	}

	if pending != nil {
		return nil, n.unknownShape(raw, tree, pending.Error())
	}
	return nil, n.unknownShape(raw, tree, "no container path matched")
}

func (n *Normalizer) unknownShape(raw RawResponse, tree any, msg string) error {
	return &NormalizationError{
		Kind:        UnknownShape,
		ContentType: raw.ContentType,
		Message:     msg,
		Raw:         raw.Body,
		Tree:        tree,
	}
}

func (n *Normalizer) record(obj map[string]any) Record {
	rec := Record{
		Fields: make(map[string]string, len(obj)),
		Extra:  make(map[string]any),
	}
	for k, v := range obj {
		if n.fields != nil {
			if _, known := n.fields[k]; !known {
				rec.Extra[k] = v
				continue
			}
		}
		if s, ok := stringify(v); ok {
			rec.Fields[k] = s
		}
	}
	return rec
}

// errItemsAbsent marks a container that declares records but has no items
// key at all. Later probes are still tried before it is reported.
var errItemsAbsent = errors.New("items key absent")

// extract resolves the probe against tree. matched is false when the
// container is absent so the next probe can be tried; err is set when the
// container is present but contradicts itself.
func (p Probe) extract(tree any) (items []any, matched bool, err error) {
	container, ok := walk(tree, p.Path)
	if !ok {
		return nil, false, nil
	}

	if p.isRoot() {
		list, isList := container.([]any)
		return list, isList, nil
	}

	node := container
	present := true
	declared, hasCount := -1, false
	if p.Items != "" {
		obj, isObj := container.(map[string]any)
		if !isObj {
			return nil, false, nil
		}
		node, present = obj[p.Items]
		if p.Count != "" {
			declared, hasCount = declaredCount(obj[p.Count])
		}
	}

	if isEmptyNode(node) {
		switch {
		case hasCount && declared > 0 && !present:
			return nil, false, fmt.Errorf("probe %q: %s declares %d records but %s is missing: %w", p.Name, p.Count, declared, p.Items, errItemsAbsent)
		case hasCount && declared > 0:
			return nil, false, fmt.Errorf("probe %q: %s declares %d records but %s is empty", p.Name, p.Count, declared, p.Items)
		case hasCount && declared == 0:
			return []any{}, true, nil
		default:
			return nil, false, nil
		}
	}

	switch v := node.(type) {
	case []any:
		items = v
	case map[string]any:
		// A single match comes back as a bare object.
		items = []any{v}
	default:
		return nil, false, nil
	}

	if hasCount && declared > 0 && len(items) == 0 {
		return nil, false, fmt.Errorf("probe %q: %s declares %d records but %s is empty", p.Name, p.Count, declared, p.Items)
	}
	return items, true, nil
}

func walk(tree any, path []string) (any, bool) {
	node := tree
	if node == nil {
		return nil, false
	}
	for _, key := range path {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		next, ok := obj[key]
		if !ok || next == nil {
			return nil, false
		}
		node = next
	}
	return node, true
}

func isEmptyNode(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		// Empty XML elements decode to "".
		return strings.TrimSpace(t) == ""
	}
	return false
}

func declaredCount(v any) (int, bool) {
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	case float64:
		return int(t), true
	case int:
		return t, true
	case map[string]any:
		// XML element carrying attributes.
		text, ok := t["#text"].(string)
		if !ok {
			return 0, false
		}
		s = strings.TrimSpace(text)
	default:
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case map[string]any:
		if text, ok := t["#text"].(string); ok {
			return text, true
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v), true
	}
	return string(b), true
}

func parseTree(raw RawResponse) (any, error) {
	switch raw.ContentType {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(raw.Body))
		dec.UseNumber()
		var tree any
		if err := dec.Decode(&tree); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, errors.New("decode json: trailing data after document")
		}
		return tree, nil
	case XML:
		m, err := mxj.NewMapXml(raw.Body)
		if err != nil {
			return nil, fmt.Errorf("decode xml: %w", err)
		}
		return map[string]any(m), nil
	default:
		return nil, fmt.Errorf("unsupported content type %q", raw.ContentType)
	}
}

func cloneProbes(p []Probe) []Probe {
	return append([]Probe(nil), p...)
}
