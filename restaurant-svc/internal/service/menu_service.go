package service

import (
	"context"
	"errors"

	"restaurant-saas/restaurant-svc/internal/apperr"
	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
)

type CategoryService struct {
	repo      CategoryRepository
	ownership *Ownership
}

func NewCategoryService(repo CategoryRepository, ownership *Ownership) *CategoryService {
	return &CategoryService{repo: repo, ownership: ownership}
}

func (s *CategoryService) Create(ctx context.Context, caller uuid.UUID, req *domain.CategoryCreate) (*domain.MenuCategory, error) {
	if err := s.ownership.Authorize(ctx, caller, domain.KindRestaurant, req.RestaurantID); err != nil {
		return nil, err
	}

	category := &domain.MenuCategory{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Position:     req.Position,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, storeError(err)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, caller, restaurantID uuid.UUID) ([]domain.MenuCategory, error) {
	if err := s.ownership.Authorize(ctx, caller, domain.KindRestaurant, restaurantID); err != nil {
		return nil, err
	}
	categories, err := s.repo.ListCategories(ctx, restaurantID)
	if err != nil {
		return nil, storeError(err)
	}
	return categories, nil
}

func (s *CategoryService) Update(ctx context.Context, caller, id uuid.UUID, u *domain.CategoryUpdate) (*domain.MenuCategory, error) {
	if err := s.ownership.Authorize(ctx, caller, domain.KindCategory, id); err != nil {
		return nil, err
	}
	if u.IsEmpty() {
		return nil, apperr.BadRequest("No fields to update")
	}

	category, err := s.repo.UpdateCategory(ctx, id, u)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperr.NotFound("Category not found")
	}
	if err != nil {
		return nil, storeError(err)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, caller, id uuid.UUID) error {
	if err := s.ownership.Authorize(ctx, caller, domain.KindCategory, id); err != nil {
		return err
	}
	err := s.repo.DeleteCategory(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperr.NotFound("Category not found")
	}
	if err != nil {
		return storeError(err)
	}
	return nil
}

var _ CategoryServiceInterface = (*CategoryService)(nil)

type ItemService struct {
	repo      ItemRepository
	ownership *Ownership
}

func NewItemService(repo ItemRepository, ownership *Ownership) *ItemService {
	return &ItemService{repo: repo, ownership: ownership}
}

// checkCategory enforces that an item's category lives in the item's restaurant.
func (s *ItemService) checkCategory(ctx context.Context, categoryID, restaurantID uuid.UUID) error {
	category, err := s.repo.GetCategory(ctx, categoryID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperr.BadRequest("Category not found")
	}
	if err != nil {
		return storeError(err)
	}
	if category.RestaurantID != restaurantID {
		return apperr.BadRequest("Category does not belong to this restaurant")
	}
	return nil
}

func (s *ItemService) Create(ctx context.Context, caller uuid.UUID, req *domain.ItemCreate) (*domain.MenuItem, error) {
	if err := s.ownership.Authorize(ctx, caller, domain.KindRestaurant, req.RestaurantID); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, req.CategoryID, req.RestaurantID); err != nil {
		return nil, err
	}

	item := &domain.MenuItem{
		RestaurantID: req.RestaurantID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		BasePrice:    req.BasePrice,
		ImageURL:     req.ImageURL,
		IsAvailable:  req.IsAvailable == nil || *req.IsAvailable,
		Position:     req.Position,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, storeError(err)
	}
	return item, nil
}

func (s *ItemService) List(ctx context.Context, caller, restaurantID uuid.UUID) ([]domain.MenuItem, error) {
	if err := s.ownership.Authorize(ctx, caller, domain.KindRestaurant, restaurantID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, restaurantID)
	if err != nil {
		return nil, storeError(err)
	}
	return items, nil
}

func (s *ItemService) Update(ctx context.Context, caller, id uuid.UUID, u *domain.ItemUpdate) (*domain.MenuItem, error) {
	if err := s.ownership.Authorize(ctx, caller, domain.KindItem, id); err != nil {
		return nil, err
	}
	if u.IsEmpty() {
		return nil, apperr.BadRequest("No fields to update")
	}

	if u.CategoryID != nil {
		current, err := s.repo.GetItem(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound("Menu item not found")
		}
		if err != nil {
			return nil, storeError(err)
		}
		if err := s.checkCategory(ctx, *u.CategoryID, current.RestaurantID); err != nil {
			return nil, err
		}
	}

	item, err := s.repo.UpdateItem(ctx, id, u)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperr.NotFound("Menu item not found")
	}
	if err != nil {
		return nil, storeError(err)
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, caller, id uuid.UUID) error {
	if err := s.ownership.Authorize(ctx, caller, domain.KindItem, id); err != nil {
		return err
	}
	err := s.repo.DeleteItem(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperr.NotFound("Menu item not found")
	}
	if err != nil {
		return storeError(err)
	}
	return nil
}

var _ ItemServiceInterface = (*ItemService)(nil)

type SideService struct {
	repo      SideRepository
	ownership *Ownership
}

func NewSideService(repo SideRepository, ownership *Ownership) *SideService {
	return &SideService{repo: repo, ownership: ownership}
}

func (s *SideService) Create(ctx context.Context, caller, itemID uuid.UUID, req *domain.SideCreate) (*domain.MenuItemSide, error) {
	if err := s.ownership.Authorize(ctx, caller, domain.KindItem, itemID); err != nil {
		return nil, err
	}

	side := &domain.MenuItemSide{
		MenuItemID: itemID,
		Name:       req.Name,
		ExtraPrice: req.ExtraPrice,
		IsRequired: req.IsRequired,
		Position:   req.Position,
		ImageURL:   req.ImageURL,
	}
	if err := s.repo.CreateSide(ctx, side); err != nil {
		return nil, storeError(err)
	}
	return side, nil
}

func (s *SideService) List(ctx context.Context, caller, itemID uuid.UUID) ([]domain.MenuItemSide, error) {
	if err := s.ownership.Authorize(ctx, caller, domain.KindItem, itemID); err != nil {
		return nil, err
	}
	sides, err := s.repo.ListSides(ctx, itemID)
	if err != nil {
		return nil, storeError(err)
	}
	return sides, nil
}

func (s *SideService) Update(ctx context.Context, caller, id uuid.UUID, u *domain.SideUpdate) (*domain.MenuItemSide, error) {
	if err := s.ownership.Authorize(ctx, caller, domain.KindSide, id); err != nil {
		return nil, err
	}
	if u.IsEmpty() {
		return nil, apperr.BadRequest("No fields to update")
	}
	return s.update(ctx, id, u)
}

func (s *SideService) Delete(ctx context.Context, caller, id uuid.UUID) error {
	if err := s.ownership.Authorize(ctx, caller, domain.KindSide, id); err != nil {
		return err
	}
	return s.delete(ctx, id)
}

// UpdateForItem is the nested form of Update: the side must hang off itemID.
func (s *SideService) UpdateForItem(ctx context.Context, caller, itemID, sideID uuid.UUID, u *domain.SideUpdate) (*domain.MenuItemSide, error) {
	if err := s.authorizeForItem(ctx, caller, itemID, sideID); err != nil {
		return nil, err
	}
	if u.IsEmpty() {
		return nil, apperr.BadRequest("No fields to update")
	}
	return s.update(ctx, sideID, u)
}

func (s *SideService) DeleteForItem(ctx context.Context, caller, itemID, sideID uuid.UUID) error {
	if err := s.authorizeForItem(ctx, caller, itemID, sideID); err != nil {
		return err
	}
	return s.delete(ctx, sideID)
}

func (s *SideService) authorizeForItem(ctx context.Context, caller, itemID, sideID uuid.UUID) error {
	if err := s.ownership.Authorize(ctx, caller, domain.KindItem, itemID); err != nil {
		return err
	}
	side, err := s.repo.GetSide(ctx, sideID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperr.NotFound("Side not found")
	}
	if err != nil {
		return storeError(err)
	}
	if side.MenuItemID != itemID {
		return apperr.NotFound("Side not found")
	}
	return nil
}

func (s *SideService) update(ctx context.Context, id uuid.UUID, u *domain.SideUpdate) (*domain.MenuItemSide, error) {
	side, err := s.repo.UpdateSide(ctx, id, u)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperr.NotFound("Side not found")
	}
	if err != nil {
		return nil, storeError(err)
	}
	return side, nil
}

func (s *SideService) delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteSide(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperr.NotFound("Side not found")
	}
	if err != nil {
		return storeError(err)
	}
	return nil
}

var _ SideServiceInterface = (*SideService)(nil)
