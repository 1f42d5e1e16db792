package ranking

import (
	"sort"

	"github.com/tasarim-galerisi/backend/internal/models"
)

// TopN returns the n designs with the highest rating without mutating its
// input. Ties are broken deterministically: earlier createdAt wins, then
// ascending document ID.
func TopN(designs []models.Design, n int) []models.Design {
	if n <= 0 {
		return []models.Design{}
	}

	ranked := make([]models.Design, len(designs))
	copy(ranked, designs)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		if !ranked[i].CreatedAt.Equal(ranked[j].CreatedAt) {
			return ranked[i].CreatedAt.Before(ranked[j].CreatedAt)
		}
		return ranked[i].ID < ranked[j].ID
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
