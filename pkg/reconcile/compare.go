package reconcile

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pagedeck/pagedeck/pkg/catalog"
	"github.com/pagedeck/pagedeck/pkg/config"
)

// collator performs locale-aware case-insensitive name comparison for the
// alphabetical tier. The undetermined locale keeps results reproducible
// across machines.
var collator = collate.New(language.Und, collate.IgnoreCase)

// Compare orders two projects using the three-tier deck comparator:
// both names ranked in the order list compare by rank, a ranked name sorts
// before an unranked one, and unranked names compare alphabetically,
// case-insensitive. The result is a total order.
func Compare(a, b catalog.Project, cfg *config.Config) int {
	ia := cfg.OrderIndex(a.Name)
	ib := cfg.OrderIndex(b.Name)

	switch {
	case ia >= 0 && ib >= 0:
		return cmp.Compare(ia, ib)
	case ia >= 0:
		return -1
	case ib >= 0:
		return 1
	default:
		return collator.CompareString(a.Name, b.Name)
	}
}

// Sort orders projects in place with the deck comparator. The sort is stable
// so equal names keep their merge order and repeated runs over identical
// input produce identical output.
func Sort(projects []catalog.Project, cfg *config.Config) {
	slices.SortStableFunc(projects, func(a, b catalog.Project) int {
		return Compare(a, b, cfg)
	})
}
