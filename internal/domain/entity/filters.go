package entity

import "fmt"

const (
	PriceFilterKey  = "price"
	RegionFilterKey = "region"
)

// CommonFilters returns fresh copies of the filters every catalog starts with.
// Their values come from TourItem.Price and TourItem.Region, so they carry no
// options of their own.
func CommonFilters() []Filter {
	return []Filter{
		{Key: PriceFilterKey, Label: "가격", Type: FilterPrice, Options: []Option{}},
		{Key: RegionFilterKey, Label: "지역", Type: FilterRegion, Options: []Option{}},
	}
}

func isCommonKey(key string) bool {
	return key == PriceFilterKey || key == RegionFilterKey
}

// WithCommonFilters returns a copy of c whose filters start with the common
// price and region filters. Later filters reusing a common key are dropped.
func (c Catalog) WithCommonFilters() Catalog {
	filters := CommonFilters()
	for _, f := range c.Filters {
		if isCommonKey(f.Key) {
			continue
		}
		filters = append(filters, f)
	}
	items := c.Items
	if items == nil {
		items = []TourItem{}
	}
	return Catalog{Filters: filters, Items: items}
}

// CheckAttributeFilters verifies that every non-common filter key appears in
// some item's attributes and every option value is an attribute value some
// item actually has for that key.
func (c Catalog) CheckAttributeFilters() error {
	values := make(map[string]map[string]bool)
	for _, item := range c.Items {
		for _, key := range item.Attributes.Keys() {
			v, _ := item.Attributes.Get(key)
			if values[key] == nil {
				values[key] = make(map[string]bool)
			}
			values[key][v] = true
		}
	}

	for _, f := range c.Filters {
		if isCommonKey(f.Key) {
			continue
		}
		if !f.Type.Valid() {
			return fmt.Errorf("filter %q: unknown type %q", f.Key, f.Type)
		}
		present, ok := values[f.Key]
		if !ok {
			return fmt.Errorf("filter %q: no item carries this attribute", f.Key)
		}
		for _, o := range f.Options {
			if !present[o.Value] {
				return fmt.Errorf("filter %q: option %q matches no item", f.Key, o.Value)
			}
		}
	}
	return nil
}
