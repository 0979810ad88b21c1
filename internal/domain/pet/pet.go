package pet

import (
	"strings"

	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
)

// ===============================
// Pet Types
// ===============================

type Type string

const (
	TypeDog    Type = "Dog"
	TypeCat    Type = "Cat"
	TypeOthers Type = "Others"
)

// AllowedTypes is the order shown in admin forms.
var AllowedTypes = []Type{TypeDog, TypeCat, TypeOthers}

func ParseType(s string) (Type, bool) {
	for _, t := range AllowedTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// ===============================
// Catalog filter
// ===============================

type Category string

const (
	CategoryAll   Category = ""
	CategoryDog   Category = "dog"
	CategoryCat   Category = "cat"
	CategoryOther Category = "other"
)

type Sort string

const (
	SortDefault  Sort = ""
	SortOldest   Sort = "oldest"
	SortYoungest Sort = "youngest"
	SortAZ       Sort = "az"
	SortZA       Sort = "za"
)

type Filter struct {
	Category Category
	Search   string
	Sort     Sort
}

// ParseFilter normalises catalog query parameters. Unknown values fall back
// to "no filter" and "default order".
func ParseFilter(category, search, sort string) Filter {
	f := Filter{Search: strings.TrimSpace(search)}

	switch Category(strings.ToLower(strings.TrimSpace(category))) {
	case CategoryDog:
		f.Category = CategoryDog
	case CategoryCat:
		f.Category = CategoryCat
	case CategoryOther, "others":
		f.Category = CategoryOther
	}

	switch Sort(strings.ToLower(strings.TrimSpace(sort))) {
	case SortOldest:
		f.Sort = SortOldest
	case SortYoungest:
		f.Sort = SortYoungest
	case SortAZ:
		f.Sort = SortAZ
	case SortZA:
		f.Sort = SortZA
	}

	return f
}

// ===============================
// Admin input
// ===============================

type Input struct {
	Name        string
	Type        string
	Breed       string
	Age         int
	ImageURL    string
	Description string
}

func (in Input) Validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Breed) == "" {
		return httperr.Validation("invalid_pet")
	}
	if _, ok := ParseType(in.Type); !ok {
		return httperr.Validation("invalid_pet")
	}
	if in.Age < 0 {
		return httperr.Validation("invalid_pet")
	}
	return nil
}
