package scoring

import (
	"sort"

	clothing "wardrobe_backend/internal/feature/clothing/domain/entity"
	"wardrobe_backend/internal/shared/palette"
)

// TopN is the number of items returned by Rank.
const TopN = 3

// ScoredItem is a wardrobe item with its total score and the reasons behind it.
type ScoredItem struct {
	Item    clothing.ClothingItem
	Score   int
	Reasons []string
}

// Scorer applies the scoring rules using a color registry for group membership.
type Scorer struct {
	registry *palette.Registry
}

// NewScorer returns a Scorer backed by registry.
func NewScorer(registry *palette.Registry) *Scorer {
	return &Scorer{registry: registry}
}

// Score evaluates every rule against item. Reasons is never nil.
func (s *Scorer) Score(item clothing.ClothingItem, c Context) ScoredItem {
	out := ScoredItem{Item: item, Reasons: []string{}}
	for _, r := range rules {
		points, reason := r(s.registry, &item, c)
		out.Score += points
		if reason != "" {
			out.Reasons = append(out.Reasons, reason)
		}
	}
	return out
}

// Rank scores every item and returns the TopN best, highest score first.
// Items with equal scores keep their input order.
func (s *Scorer) Rank(items []clothing.ClothingItem, c Context) ([]ScoredItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyWardrobe
	}
	scored := make([]ScoredItem, 0, len(items))
	for _, it := range items {
		scored = append(scored, s.Score(it, c))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > TopN {
		scored = scored[:TopN]
	}
	return scored, nil
}
