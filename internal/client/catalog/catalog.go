// Package catalog serves the skill-offer feed of the home screen: listing,
// searching, refreshing and the offer detail with its "Connect" action.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/skillswap/internal/client/latency"
	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/client/repositories/offers"
	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/logging"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNotFound is returned when an offer ID is not in the catalog.
var ErrNotFound = common.ErrNotFound

// Service defines the catalog operations used by the home screen.
//
// Contract:
//   - List: the full catalog in insertion order.
//   - Filter: case-insensitive substring search over skill, description and
//     category; a blank query yields the full list.
//   - Refresh: the full catalog again, after the artificial delay.
//   - Get: one offer by ID, ErrNotFound if absent.
//   - Connect: confirmation text for a connection request. It has no effect.
type Service interface {
	List(ctx context.Context) ([]models.SkillOffer, error)
	Filter(ctx context.Context, query string) ([]models.SkillOffer, error)
	Refresh(ctx context.Context) ([]models.SkillOffer, error)
	Get(ctx context.Context, id string) (*models.SkillOffer, error)
	Connect(ctx context.Context, id string) (string, error)
}

type catalogService struct {
	repo  offers.Repository
	delay latency.Simulator
	log   logging.Logger
}

// NewService binds the catalog to a repository, the refresh delay and a
// logger.
func NewService(repo offers.Repository, delay latency.Simulator, log logging.Logger) Service {
	return &catalogService{repo: repo, delay: delay, log: log.With("component", "catalog")}
}

func (s *catalogService) List(ctx context.Context) ([]models.SkillOffer, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return list, nil
}

func (s *catalogService) Filter(ctx context.Context, query string) ([]models.SkillOffer, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	found := FilterOffers(list, query)
	s.log.Debug(ctx, "filter", "query", query, "matches", len(found))
	return found, nil
}

// Refresh re-reads the catalog after the delay. The seed data never changes,
// so the content is the same as List.
func (s *catalogService) Refresh(ctx context.Context) ([]models.SkillOffer, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}
	return s.List(ctx)
}

func (s *catalogService) Get(ctx context.Context, id string) (*models.SkillOffer, error) {
	o, err := s.repo.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return o, nil
}

func (s *catalogService) Connect(ctx context.Context, id string) (string, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	s.log.Info(ctx, "connection request", "offer", o.ID, "user", o.User)
	return fmt.Sprintf("Connection request sent to %s!", o.User), nil
}

// FilterOffers returns the offers whose skill, description or category
// contains query, ignoring case. Input order is preserved. A blank query
// returns offers unchanged.
//
// The scan is linear in the number of offers and is run on every keystroke
// of the search box.
func FilterOffers(list []models.SkillOffer, query string) []models.SkillOffer {
	if strings.TrimSpace(query) == "" {
		return list
	}

	lower := cases.Lower(language.Und)
	q := lower.String(query)

	out := make([]models.SkillOffer, 0, len(list))
	for _, o := range list {
		if strings.Contains(lower.String(o.Skill), q) ||
			strings.Contains(lower.String(o.Description), q) ||
			strings.Contains(lower.String(o.Category), q) {
			out = append(out, o)
		}
	}
	return out
}
