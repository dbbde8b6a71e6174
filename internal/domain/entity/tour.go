package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type FilterType string

const (
	FilterSingleSelect FilterType = "single_select"
	FilterMultiSelect  FilterType = "multi_select"
	FilterPrice        FilterType = "price"
	FilterRegion       FilterType = "region"
)

func (t FilterType) Valid() bool {
	switch t {
	case FilterSingleSelect, FilterMultiSelect, FilterPrice, FilterRegion:
		return true
	}
	return false
}

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Filter struct {
	Key     string     `json:"key"`
	Label   string     `json:"label"`
	Type    FilterType `json:"type"`
	Options []Option   `json:"options"`
}

type TourItem struct {
	Title      string     `json:"title"`
	Link       string     `json:"link"`
	Course     string     `json:"course"`
	Price      int        `json:"price"`
	Region     string     `json:"region"`
	Attributes Attributes `json:"attributes"`
}

// Catalog is the filters + items document shared by the static fixtures and
// the JSON the AI provider is asked to produce.
type Catalog struct {
	Filters []Filter   `json:"filters"`
	Items   []TourItem `json:"items"`
}

// EmptyCatalog never serialises its slices as null.
func EmptyCatalog() Catalog {
	return Catalog{Filters: []Filter{}, Items: []TourItem{}}
}

// Envelope is the {id, output} wrapper returned by both resolution paths.
// ID is 0 and Output a Catalog for static data; for AI answers ID is the
// provider response id and Output its text.
type Envelope struct {
	ID     any `json:"id"`
	Output any `json:"output"`
}

func StaticEnvelope(c Catalog) Envelope {
	return Envelope{ID: 0, Output: c}
}

func AIEnvelope(id, output string) Envelope {
	return Envelope{ID: id, Output: output}
}

type Destination struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Attributes is an insertion-ordered bag of string values.
type Attributes struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewAttributes builds an Attributes from alternating key/value arguments.
func NewAttributes(kv ...string) Attributes {
	if len(kv)%2 != 0 {
		panic("entity: NewAttributes needs key/value pairs")
	}
	a := Attributes{m: orderedmap.New[string, string]()}
	for i := 0; i < len(kv); i += 2 {
		a.m.Set(kv[i], kv[i+1])
	}
	return a
}

func (a Attributes) Get(key string) (string, bool) {
	if a.m == nil {
		return "", false
	}
	return a.m.Get(key)
}

func (a *Attributes) Set(key, value string) {
	if a.m == nil {
		a.m = orderedmap.New[string, string]()
	}
	a.m.Set(key, value)
}

func (a Attributes) Len() int {
	if a.m == nil {
		return 0
	}
	return a.m.Len()
}

func (a Attributes) Keys() []string {
	if a.m == nil {
		return nil
	}
	keys := make([]string, 0, a.m.Len())
	for pair := a.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (a Attributes) MarshalJSON() ([]byte, error) {
	if a.m == nil {
		return []byte("{}"), nil
	}
	return a.m.MarshalJSON()
}

// UnmarshalJSON accepts any JSON value per key and stores its string form.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	a.m = orderedmap.New[string, string]()
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	raw := orderedmap.New[string, json.RawMessage]()
	if err := raw.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("attributes: %w", err)
	}
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		v, err := coerceString(pair.Value)
		if err != nil {
			return fmt.Errorf("attributes[%s]: %w", pair.Key, err)
		}
		a.m.Set(pair.Key, v)
	}
	return nil
}

func coerceString(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return "", err
	}
	return buf.String(), nil
}
