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

type RestaurantService struct {
	repo RestaurantRepository
}

func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

// Create registers a restaurant for the caller and flags the caller's profile as onboarded.
func (s *RestaurantService) Create(ctx context.Context, ownerID uuid.UUID, req *domain.RestaurantCreate) (*domain.Restaurant, error) {
	rest, err := s.repo.CreateRestaurant(ctx, ownerID, req)
	if errors.Is(err, domain.ErrConflict) {
		return nil, apperr.Conflict("A restaurant with this slug already exists")
	}
	if err != nil {
		return nil, storeError(err)
	}

	if err := s.repo.MarkOnboarded(ctx, ownerID); err != nil {
		logger.Warn(ctx, "Failed to mark profile onboarded",
			zap.String("user_id", ownerID.String()), zap.Error(err))
	}

	logger.Info(ctx, "Restaurant created",
		zap.String("restaurant_id", rest.ID.String()), zap.String("slug", rest.Slug))
	return rest, nil
}

func (s *RestaurantService) ListMine(ctx context.Context, ownerID uuid.UUID) ([]domain.Restaurant, error) {
	restaurants, err := s.repo.ListRestaurantsByOwner(ctx, ownerID)
	if err != nil {
		return nil, storeError(err)
	}
	return restaurants, nil
}

func (s *RestaurantService) GetPublic(ctx context.Context, slug string) (*domain.RestaurantPublic, error) {
	rest, err := s.repo.GetActiveRestaurantBySlug(ctx, slug)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperr.NotFound("Restaurant not found")
	}
	if err != nil {
		return nil, storeError(err)
	}
	public := rest.Public()
	return &public, nil
}

func (s *RestaurantService) HasRestaurant(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	has, err := s.repo.OwnerHasRestaurant(ctx, ownerID)
	if err != nil {
		return false, storeError(err)
	}
	return has, nil
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)

type ProfileService struct {
	repo ProfileRepository
}

func NewProfileService(repo ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperr.NotFound("Profile not found")
	}
	if err != nil {
		return nil, storeError(err)
	}
	return profile, nil
}

func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, u *domain.ProfileUpdate) (*domain.Profile, error) {
	if u.IsEmpty() {
		return nil, apperr.BadRequest("No fields to update")
	}

	profile, err := s.repo.UpdateProfile(ctx, userID, u)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperr.NotFound("Profile not found")
	}
	if err != nil {
		return nil, storeError(err)
	}
	return profile, nil
}

var _ ProfileServiceInterface = (*ProfileService)(nil)
