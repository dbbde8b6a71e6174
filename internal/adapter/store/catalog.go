package store

import (
	"strings"

	"jeju-tour-api/internal/domain/entity"
)

// DefaultLocation is used by the refined catalog when the caller names none.
const DefaultLocation = "우도"

// StaticCatalog serves the hand-authored tour fixtures. Every call builds a
// fresh value, so callers may modify what they get back.
type StaticCatalog struct {
	imagePrefix string
}

func NewStaticCatalog(imagePrefix string) *StaticCatalog {
	return &StaticCatalog{imagePrefix: strings.TrimRight(imagePrefix, "/")}
}

// Lookup returns the catalog for a location code, or an empty catalog when
// the code is absent or unknown.
func (s *StaticCatalog) Lookup(location string) entity.Catalog {
	build, ok := initialFixtures[strings.TrimSpace(location)]
	if !ok {
		return entity.EmptyCatalog()
	}
	return build()
}

// Refined returns the narrower catalog simulating a follow-up query.
func (s *StaticCatalog) Refined(location string) entity.Catalog {
	location = strings.TrimSpace(location)
	if location == "" {
		location = DefaultLocation
	}
	build, ok := refinedFixtures[location]
	if !ok {
		return entity.EmptyCatalog()
	}
	return build()
}

func (s *StaticCatalog) Destinations() []entity.Destination {
	out := make([]entity.Destination, len(destinations))
	for i, d := range destinations {
		out[i] = entity.Destination{
			Name:        d.name,
			Code:        d.code,
			Image:       s.imagePrefix + "/" + d.image,
			Description: d.description,
		}
	}
	return out
}

// Locations lists the supported location codes in display order.
func Locations() []string {
	codes := make([]string, len(destinations))
	for i, d := range destinations {
		codes[i] = d.code
	}
	return codes
}
