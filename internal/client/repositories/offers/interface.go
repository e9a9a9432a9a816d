package offers

import (
	"context"

	"github.com/dmitrijs2005/skillswap/internal/client/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.SkillOffer, error)
	Get(ctx context.Context, id string) (*models.SkillOffer, error)
}
