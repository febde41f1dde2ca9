package service

import (
	"context"
	"errors"
	"strings"

	"restaurant-saas/logger"
	"restaurant-saas/restaurant-svc/internal/apperr"
	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ownership decides whether a caller may act on an entity by walking it up to its restaurant.
type Ownership struct {
	repo OwnershipRepository
}

func NewOwnership(repo OwnershipRepository) *Ownership {
	return &Ownership{repo: repo}
}

// Authorize fails closed: lookup errors other than a missing row are reported as Forbidden.
func (o *Ownership) Authorize(ctx context.Context, caller uuid.UUID, kind domain.EntityKind, id uuid.UUID) error {
	ownerID, err := o.repo.ResolveOwner(ctx, kind, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperr.NotFound(notFoundMessage(kind))
	}
	if err != nil {
		logger.Error(ctx, "Ownership lookup failed", err,
			zap.String("kind", string(kind)), zap.String("id", id.String()))
		return apperr.Forbidden(forbiddenMessage(kind))
	}
	if ownerID != caller {
		return apperr.Forbidden(forbiddenMessage(kind))
	}
	return nil
}

func notFoundMessage(kind domain.EntityKind) string {
	label := string(kind)
	return strings.ToUpper(label[:1]) + label[1:] + " not found"
}

func forbiddenMessage(kind domain.EntityKind) string {
	return "You don't have access to this " + string(kind)
}

// storeError wraps an unexpected repository failure for the API.
func storeError(err error) error {
	return apperr.Database(err)
}
