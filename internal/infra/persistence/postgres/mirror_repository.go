package postgres

import (
	"context"
	"time"

	"blogauth/internal/domain/entity"
	domainerrors "blogauth/internal/domain/errors"
	"blogauth/internal/domain/repository"
	"blogauth/internal/errors"
	"blogauth/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mirrorRepository implements repository.MirrorRepository over the legacy_users table.
type mirrorRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewMirrorRepository is the constructor for mirrorRepository.
func NewMirrorRepository(db *gorm.DB) repository.MirrorRepository {
	return &mirrorRepository{db: db, now: time.Now}
}

// UpsertByUsername relies on the unique index on username so concurrent writers converge on one row.
func (repo *mirrorRepository) UpsertByUsername(ctx context.Context, username, passwordHash string) (*entity.MirrorRecord, error) {
	mirrorM := &model.MirrorModel{
		Username:     username,
		PasswordHash: passwordHash,
		SyncedAt:     repo.now().UTC(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"password_hash", "synced_at"}),
		}).
		Create(mirrorM).Error
	if err != nil {
		return nil, errors.Join(domainerrors.ErrSyncFailure, storeError(err, "failed to upsert mirror record"))
	}

	return toMirrorDomain(mirrorM), nil
}

// InsertIfMissing never overwrites a row, so a stale hash read before a concurrent
// credential change cannot replace the newer one.
func (repo *mirrorRepository) InsertIfMissing(ctx context.Context, username, passwordHash string) (bool, error) {
	mirrorM := &model.MirrorModel{
		Username:     username,
		PasswordHash: passwordHash,
		SyncedAt:     repo.now().UTC(),
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoNothing: true,
		}).
		Create(mirrorM)
	if result.Error != nil {
		return false, errors.Join(domainerrors.ErrSyncFailure, storeError(result.Error, "failed to insert mirror record"))
	}

	return result.RowsAffected > 0, nil
}

// FindByUsername returns the mirror row for username. Reads may be served by a replica.
func (repo *mirrorRepository) FindByUsername(ctx context.Context, username string) (*entity.MirrorRecord, error) {
	var mirrorM model.MirrorModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&mirrorM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMirrorNotFound
		}

		return nil, storeError(err, "failed to find mirror record")
	}

	return toMirrorDomain(&mirrorM), nil
}

// FindByUsernames returns the rows found for the given usernames, keyed by username.
func (repo *mirrorRepository) FindByUsernames(ctx context.Context, usernames []string) (map[string]*entity.MirrorRecord, error) {
	records := make(map[string]*entity.MirrorRecord, len(usernames))
	if len(usernames) == 0 {
		return records, nil
	}

	var rows []model.MirrorModel
	if err := repo.db.WithContext(ctx).Where("username IN ?", usernames).Find(&rows).Error; err != nil {
		return nil, storeError(err, "failed to find mirror records")
	}

	for i := range rows {
		records[rows[i].Username] = toMirrorDomain(&rows[i])
	}

	return records, nil
}
