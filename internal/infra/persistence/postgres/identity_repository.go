package postgres

import (
	"context"
	"time"

	"blogauth/internal/domain/entity"
	"blogauth/internal/domain/repository"
	"blogauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// identityRepository implements repository.IdentityRepository using GORM.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// primary pins reads to the primary so a verification never sees a stale hash.
func (repo *identityRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

// FindByNormalizedUsername retrieves an identity by its case-insensitive key.
func (repo *identityRepository) FindByNormalizedUsername(ctx context.Context, normalized string) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.primary(ctx).
		Preload("Roles").
		Where("normalized_username = ?", normalized).
		First(&identityM).Error
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, storeError(err, "failed to find identity by username")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByID retrieves a single identity by its unique ID.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.primary(ctx).
		Preload("Roles").
		Where("id = ?", id).
		First(&identityM).Error
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, storeError(err, "failed to find identity by id")
	}

	return toIdentityDomain(&identityM), nil
}

// Create persists the identity and links its roles, creating missing roles.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	db := repo.db.WithContext(ctx)

	roles, err := repo.ensureRoles(db, identity.Roles)
	if err != nil {
		return err
	}

	identityM := fromIdentityDomain(identity)
	identityM.Roles = roles

	// Roles.* skips re-upserting the roles; the join rows are still written.
	if err := db.Omit("Roles.*").Create(identityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUsername
		}

		return storeError(err, "failed to create identity")
	}

	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

func (repo *identityRepository) ensureRoles(db *gorm.DB, roles entity.Roles) ([]model.RoleModel, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	names := roles.ToStrings()
	candidates := make([]model.RoleModel, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, model.RoleModel{ID: uuid.New(), Name: name})
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&candidates).Error; err != nil {
		return nil, storeError(err, "failed to create roles")
	}

	var stored []model.RoleModel
	if err := db.Clauses(dbresolver.Write).Where("name IN ?", names).Find(&stored).Error; err != nil {
		return nil, storeError(err, "failed to load roles")
	}

	return stored, nil
}

// UpdateCredentials writes the new hash and stamp only if the stored stamp is still ExpectedStamp.
func (repo *identityRepository) UpdateCredentials(ctx context.Context, update repository.CredentialUpdate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ? AND security_stamp = ?", update.IdentityID, update.ExpectedStamp).
		Updates(map[string]any{
			"password_hash":  update.PasswordHash,
			"security_stamp": update.SecurityStamp,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return storeError(result.Error, "failed to update credentials")
	}
	if result.RowsAffected == 1 {
		return nil
	}

	// No row matched: either the identity is gone or someone rotated the stamp first.
	var count int64
	if err := repo.primary(ctx).Model(&model.IdentityModel{}).Where("id = ?", update.IdentityID).Count(&count).Error; err != nil {
		return storeError(err, "failed to check identity existence")
	}
	if count == 0 {
		return repository.ErrIdentityNotFound
	}

	return repository.ErrStaleSecurityStamp
}

// ListPage returns up to limit identities ordered by ID, starting after the given ID.
func (repo *identityRepository) ListPage(ctx context.Context, after uuid.UUID, limit int) ([]*entity.Identity, error) {
	var identitiesM []model.IdentityModel

	query := repo.primary(ctx).Order("id").Limit(limit)
	if after != uuid.Nil {
		query = query.Where("id > ?", after)
	}
	if err := query.Find(&identitiesM).Error; err != nil {
		return nil, storeError(err, "failed to list identities")
	}

	identities := make([]*entity.Identity, 0, len(identitiesM))
	for i := range identitiesM {
		identities = append(identities, toIdentityDomain(&identitiesM[i]))
	}

	return identities, nil
}
