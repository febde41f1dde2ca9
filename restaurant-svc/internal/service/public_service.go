package service

import (
	"context"
	"errors"

	"restaurant-saas/logger"
	"restaurant-saas/restaurant-svc/internal/apperr"
	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PublicService serves the read-only storefront. Only a failed restaurant lookup is fatal;
// the rest of the menu degrades to empty lists.
type PublicService struct {
	repo PublicRepository
}

func NewPublicService(repo PublicRepository) *PublicService {
	return &PublicService{repo: repo}
}

func (s *PublicService) activeRestaurant(ctx context.Context, slug string) (*domain.Restaurant, error) {
	rest, err := s.repo.GetActiveRestaurantBySlug(ctx, slug)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperr.NotFound("Restaurant not found")
	}
	if err != nil {
		return nil, storeError(err)
	}
	return rest, nil
}

func (s *PublicService) Restaurant(ctx context.Context, slug string) (*domain.PublicRestaurantInfo, error) {
	rest, err := s.activeRestaurant(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &domain.PublicRestaurantInfo{
		Name:         rest.Name,
		Slug:         rest.Slug,
		Description:  rest.Description,
		LogoURL:      rest.LogoURL,
		PrimaryColor: rest.PrimaryColor,
		Address:      rest.Address,
		City:         rest.City,
		Country:      rest.Country,
		Phone:        rest.Phone,
		Whatsapp:     rest.Whatsapp,
	}, nil
}

func (s *PublicService) Menu(ctx context.Context, slug string) (*domain.PublicMenu, error) {
	rest, err := s.activeRestaurant(ctx, slug)
	if err != nil {
		return nil, err
	}

	menu := &domain.PublicMenu{
		Restaurant: domain.PublicMenuRestaurant{
			Name:         rest.Name,
			Slug:         rest.Slug,
			LogoURL:      rest.LogoURL,
			PrimaryColor: rest.PrimaryColor,
			Address:      rest.Address,
			City:         rest.City,
			Country:      rest.Country,
			Phone:        rest.Phone,
			Whatsapp:     rest.Whatsapp,
		},
		Menu: []domain.PublicCategory{},
	}

	categories, err := s.repo.ListActiveCategories(ctx, rest.ID)
	if err != nil {
		logger.Warn(ctx, "Failed to load menu categories", zap.String("slug", slug), zap.Error(err))
		return menu, nil
	}
	if len(categories) == 0 {
		return menu, nil
	}

	items, err := s.repo.ListAvailableItems(ctx, rest.ID)
	if err != nil {
		logger.Warn(ctx, "Failed to load menu items", zap.String("slug", slug), zap.Error(err))
		items = nil
	}

	sidesByItem := map[uuid.UUID][]domain.PublicSide{}
	if len(items) > 0 {
		itemIDs := make([]uuid.UUID, len(items))
		for i, item := range items {
			itemIDs[i] = item.ID
		}
		sides, err := s.repo.ListSidesForItems(ctx, itemIDs)
		if err != nil {
			logger.Warn(ctx, "Failed to load menu sides", zap.String("slug", slug), zap.Error(err))
		}
		for _, side := range sides {
			sidesByItem[side.MenuItemID] = append(sidesByItem[side.MenuItemID], domain.PublicSide{
				ID:         side.ID,
				Name:       side.Name,
				ExtraPrice: side.ExtraPrice,
			})
		}
	}

	for _, category := range categories {
		entry := domain.PublicCategory{
			CategoryID: category.ID,
			Name:       category.Name,
			Items:      []domain.PublicItem{},
		}
		for _, item := range items {
			if item.CategoryID != category.ID {
				continue
			}
			sides := sidesByItem[item.ID]
			if sides == nil {
				sides = []domain.PublicSide{}
			}
			entry.Items = append(entry.Items, domain.PublicItem{
				ID:          item.ID,
				Name:        item.Name,
				Description: item.Description,
				Price:       item.BasePrice,
				ImageURL:    item.ImageURL,
				Sides:       sides,
			})
		}
		menu.Menu = append(menu.Menu, entry)
	}

	return menu, nil
}

var _ PublicServiceInterface = (*PublicService)(nil)
