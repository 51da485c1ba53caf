package secrets

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/server/models"
)

// Repository persists secret records. Every method is scoped by the owner's
// user ID; a record owned by someone else behaves exactly like a missing one.
type Repository interface {
	Create(ctx context.Context, secret *models.Secret) error
	List(ctx context.Context, userID string, filter models.SecretFilter) ([]*models.SecretSummary, error)
	Get(ctx context.Context, userID, id string) (*models.Secret, error)
	Update(ctx context.Context, userID, id string, upd *models.SecretUpdate) error
	Delete(ctx context.Context, userID, id string) error
}
