package guest

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName        = errors.New("guest name is required")
	ErrInvalidHonorific = errors.New("invalid honorific")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidChildAge  = errors.New("child age must be between 1 and 15")
)

type Honorific string

const (
	HonorificMr   Honorific = "Mr"
	HonorificMrs  Honorific = "Mrs"
	HonorificMiss Honorific = "Miss"
)

func (h Honorific) String() string {
	return string(h)
}

func (h Honorific) IsValid() bool {
	switch h {
	case HonorificMr, HonorificMrs, HonorificMiss:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryAdult Category = "Adult"
	CategoryChild Category = "Child"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryAdult, CategoryChild:
		return true
	default:
		return false
	}
}

const (
	MinChildAge = 1
	MaxChildAge = 15
)

// Guest is a tagged variant: either a legacy free-text entry kept verbatim
// ("Mr John Doe") or a structured record. The upstream API serves both shapes
// side by side, so both survive here and are normalized at the edges.
type Guest struct {
	legacy    bool
	raw       string
	honorific Honorific
	name      string
	category  Category
	age       int
}

// New builds a structured guest. Age is validated for children and discarded
// for adults, matching the upstream payload rules.
func New(honorific Honorific, name string, category Category, age int) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Guest{}, ErrEmptyName
	}
	if !honorific.IsValid() {
		return Guest{}, ErrInvalidHonorific
	}
	if !category.IsValid() {
		return Guest{}, ErrInvalidCategory
	}
	if category == CategoryChild {
		if age < MinChildAge || age > MaxChildAge {
			return Guest{}, ErrInvalidChildAge
		}
	} else {
		age = 0
	}

	return Guest{
		honorific: honorific,
		name:      name,
		category:  category,
		age:       age,
	}, nil
}

// NewLegacy wraps a free-text guest entry without interpreting it.
func NewLegacy(raw string) Guest {
	return Guest{legacy: true, raw: raw}
}

// Reconstruct rebuilds a structured guest from upstream data without
// validation; the booking API already accepted it.
func Reconstruct(honorific Honorific, name string, category Category, age int) Guest {
	return Guest{
		honorific: honorific,
		name:      name,
		category:  category,
		age:       age,
	}
}

// ParseLegacy interprets a free-text entry as a structured guest: a leading
// Mr/Mrs/Miss token becomes the honorific, otherwise the honorific defaults
// to Mr and the whole string is the name. Category is always Adult; age is
// never inferred.
func ParseLegacy(raw string) Guest {
	honorific := HonorificMr
	name := strings.TrimSpace(raw)

	if first, rest, found := strings.Cut(name, " "); found {
		switch Honorific(first) {
		case HonorificMr, HonorificMrs, HonorificMiss:
			honorific = Honorific(first)
			name = strings.TrimSpace(rest)
		}
	}

	return Guest{
		honorific: honorific,
		name:      name,
		category:  CategoryAdult,
	}
}

func (g Guest) IsLegacy() bool        { return g.legacy }
func (g Guest) Raw() string           { return g.raw }
func (g Guest) Honorific() Honorific  { return g.honorific }
func (g Guest) Name() string          { return g.name }
func (g Guest) Category() Category    { return g.category }
func (g Guest) Age() int              { return g.age }

// DisplayName renders "{honorific} {name}" for structured guests and the raw
// string for legacy ones.
func (g Guest) DisplayName() string {
	if g.legacy {
		return g.raw
	}
	return g.honorific.String() + " " + g.name
}

// Key is the de-duplication identity: the exact (honorific, name) pair,
// case-sensitive. Legacy entries are keyed through ParseLegacy so an old
// "Mr John" string and a new {Mr, John} record collide.
type Key struct {
	Honorific Honorific
	Name      string
}

func (g Guest) Key() Key {
	if g.legacy {
		return ParseLegacy(g.raw).Key()
	}
	return Key{Honorific: g.honorific, Name: g.name}
}
