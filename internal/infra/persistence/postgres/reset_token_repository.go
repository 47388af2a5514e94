package postgres

import (
	"context"
	"time"

	"blogauth/internal/domain/entity"
	"blogauth/internal/domain/repository"
	"blogauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resetTokenRepository implements repository.ResetTokenRepository using GORM.
type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository is the constructor for resetTokenRepository.
func NewResetTokenRepository(db *gorm.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// Create stores the token hash. The plaintext Value is never written.
func (repo *resetTokenRepository) Create(ctx context.Context, token *entity.ResetToken) error {
	tokenM := fromResetTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrIdentityNotFound
		}

		return storeError(err, "failed to create reset token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// Consume marks the token used in a single guarded UPDATE so two concurrent consumers cannot both win.
func (repo *resetTokenRepository) Consume(ctx context.Context, req repository.ConsumeResetToken) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ResetTokenModel{}).
		Where("identity_id = ? AND token_hash = ? AND security_stamp = ?", req.IdentityID, req.TokenHash, req.SecurityStamp).
		Where("used_at IS NULL AND expires_at > ?", req.Now).
		Update("used_at", req.Now)
	if result.Error != nil {
		return storeError(result.Error, "failed to consume reset token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetTokenNotUsable
	}

	return nil
}

// InvalidateForIdentity marks every outstanding token of the identity as used.
func (repo *resetTokenRepository) InvalidateForIdentity(ctx context.Context, identityID uuid.UUID, now time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ResetTokenModel{}).
		Where("identity_id = ? AND used_at IS NULL", identityID).
		Update("used_at", now).Error
	if err != nil {
		return storeError(err, "failed to invalidate reset tokens")
	}

	return nil
}

// DeleteExpired removes tokens that expired before the cut-off.
func (repo *resetTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&model.ResetTokenModel{})
	if result.Error != nil {
		return 0, storeError(result.Error, "failed to delete expired reset tokens")
	}

	return result.RowsAffected, nil
}
