package offers

import (
	"context"

	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/common"
)

type MemoryRepository struct {
	offers []models.SkillOffer
}

// NewMemoryRepository copies offers so later changes to the argument do not
// leak into the catalog.
func NewMemoryRepository(offers []models.SkillOffer) *MemoryRepository {
	cp := make([]models.SkillOffer, len(offers))
	copy(cp, offers)
	return &MemoryRepository{offers: cp}
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.SkillOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.SkillOffer, len(r.offers))
	copy(out, r.offers)
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.SkillOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, o := range r.offers {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, common.ErrNotFound
}
