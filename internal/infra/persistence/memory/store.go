// Package memory keeps the identity and mirror stores in process memory.
// It backs the "memory" storage driver and the scenario tests.
package memory

import (
	"bytes"
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"blogauth/internal/domain/entity"
	"blogauth/internal/domain/repository"

	"github.com/google/uuid"
)

// state is everything a transaction may change. Values are never shared with callers.
type state struct {
	identities  map[uuid.UUID]*entity.Identity
	byName      map[string]uuid.UUID
	resetTokens map[string]*entity.ResetToken // keyed by token hash
}

func newState() *state {
	return &state{
		identities:  make(map[uuid.UUID]*entity.Identity),
		byName:      make(map[string]uuid.UUID),
		resetTokens: make(map[string]*entity.ResetToken),
	}
}

func (s *state) clone() *state {
	cloned := &state{
		identities:  make(map[uuid.UUID]*entity.Identity, len(s.identities)),
		byName:      maps.Clone(s.byName),
		resetTokens: make(map[string]*entity.ResetToken, len(s.resetTokens)),
	}
	for id, identity := range s.identities {
		cloned.identities[id] = identity.Clone()
	}
	for hash, token := range s.resetTokens {
		cloned.resetTokens[hash] = cloneResetToken(token)
	}

	return cloned
}

// Store owns the identity state and the mirror table.
type Store struct {
	mu sync.RWMutex
	st *state

	mirrorMu     sync.RWMutex
	mirror       map[string]*entity.MirrorRecord
	nextMirrorID int64

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		st:     newState(),
		mirror: make(map[string]*entity.MirrorRecord),
		now:    time.Now,
	}
}

// IdentityRepository returns a repository that locks per call.
func (s *Store) IdentityRepository() repository.IdentityRepository {
	return &identityRepository{store: s}
}

// ResetTokenRepository returns a repository that locks per call.
func (s *Store) ResetTokenRepository() repository.ResetTokenRepository {
	return &resetTokenRepository{store: s}
}

// MirrorRepository returns the mirror table.
func (s *Store) MirrorRepository() repository.MirrorRepository {
	return &mirrorRepository{store: s}
}

// TransactionManager returns a manager that applies transactions by snapshot and swap.
func (s *Store) TransactionManager() repository.TransactionManager {
	return &transactionManager{store: s}
}

// view runs fn against the committed state, or the transaction's copy when tx is set.
func (s *Store) view(tx *state, fn func(*state) error) error {
	if tx != nil {
		return fn(tx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.st)
}

func (s *Store) update(tx *state, fn func(*state) error) error {
	if tx != nil {
		return fn(tx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.st)
}

type transactionManager struct {
	store *Store
}

// Execute holds the write lock for the whole callback. Changes become visible only on success.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	staged := tm.store.st.clone()
	if err := fn(&repositoryFactory{store: tm.store, tx: staged}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.st = staged

	return nil
}

type repositoryFactory struct {
	store *Store
	tx    *state
}

func (f *repositoryFactory) IdentityRepo() repository.IdentityRepository {
	return &identityRepository{store: f.store, tx: f.tx}
}

func (f *repositoryFactory) ResetTokenRepo() repository.ResetTokenRepository {
	return &resetTokenRepository{store: f.store, tx: f.tx}
}

type identityRepository struct {
	store *Store
	tx    *state
}

func (r *identityRepository) FindByNormalizedUsername(ctx context.Context, normalized string) (*entity.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *entity.Identity
	err := r.store.view(r.tx, func(st *state) error {
		id, ok := st.byName[normalized]
		if !ok {
			return repository.ErrIdentityNotFound
		}
		found = st.identities[id].Clone()

		return nil
	})

	return found, err
}

func (r *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *entity.Identity
	err := r.store.view(r.tx, func(st *state) error {
		identity, ok := st.identities[id]
		if !ok {
			return repository.ErrIdentityNotFound
		}
		found = identity.Clone()

		return nil
	})

	return found, err
}

func (r *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.store.update(r.tx, func(st *state) error {
		if _, taken := st.byName[identity.NormalizedUsername]; taken {
			return repository.ErrDuplicateUsername
		}
		if _, taken := st.identities[identity.ID]; taken {
			return repository.ErrDuplicateUsername
		}

		now := r.store.now().UTC()
		identity.CreatedAt = now
		identity.UpdatedAt = now

		st.identities[identity.ID] = identity.Clone()
		st.byName[identity.NormalizedUsername] = identity.ID

		return nil
	})
}

func (r *identityRepository) UpdateCredentials(ctx context.Context, update repository.CredentialUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.store.update(r.tx, func(st *state) error {
		identity, ok := st.identities[update.IdentityID]
		if !ok {
			return repository.ErrIdentityNotFound
		}
		if identity.SecurityStamp != update.ExpectedStamp {
			return repository.ErrStaleSecurityStamp
		}

		identity.PasswordHash = update.PasswordHash
		identity.SecurityStamp = update.SecurityStamp
		identity.UpdatedAt = r.store.now().UTC()

		return nil
	})
}

func (r *identityRepository) ListPage(ctx context.Context, after uuid.UUID, limit int) ([]*entity.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var page []*entity.Identity
	err := r.store.view(r.tx, func(st *state) error {
		ids := slices.SortedFunc(maps.Keys(st.identities), func(a, b uuid.UUID) int {
			return bytes.Compare(a[:], b[:])
		})
		for _, id := range ids {
			if after != uuid.Nil && bytes.Compare(id[:], after[:]) <= 0 {
				continue
			}
			if len(page) == limit {
				break
			}
			page = append(page, st.identities[id].Clone())
		}

		return nil
	})

	return page, err
}

type resetTokenRepository struct {
	store *Store
	tx    *state
}

func cloneResetToken(token *entity.ResetToken) *entity.ResetToken {
	cloned := *token
	cloned.Value = ""
	if token.UsedAt != nil {
		usedAt := *token.UsedAt
		cloned.UsedAt = &usedAt
	}

	return &cloned
}

func (r *resetTokenRepository) Create(ctx context.Context, token *entity.ResetToken) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.store.update(r.tx, func(st *state) error {
		if _, ok := st.identities[token.IdentityID]; !ok {
			return repository.ErrIdentityNotFound
		}

		token.CreatedAt = r.store.now().UTC()
		st.resetTokens[token.TokenHash] = cloneResetToken(token)

		return nil
	})
}

func (r *resetTokenRepository) Consume(ctx context.Context, req repository.ConsumeResetToken) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.store.update(r.tx, func(st *state) error {
		token, ok := st.resetTokens[req.TokenHash]
		if !ok || token.IdentityID != req.IdentityID || !token.UsableAt(req.Now, req.SecurityStamp) {
			return repository.ErrResetTokenNotUsable
		}

		usedAt := req.Now
		token.UsedAt = &usedAt

		return nil
	})
}

func (r *resetTokenRepository) InvalidateForIdentity(ctx context.Context, identityID uuid.UUID, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.store.update(r.tx, func(st *state) error {
		for _, token := range st.resetTokens {
			if token.IdentityID == identityID && token.UsedAt == nil {
				usedAt := now
				token.UsedAt = &usedAt
			}
		}

		return nil
	})
}

func (r *resetTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var deleted int64
	err := r.store.update(r.tx, func(st *state) error {
		for hash, token := range st.resetTokens {
			if token.ExpiresAt.Before(before) {
				delete(st.resetTokens, hash)
				deleted++
			}
		}

		return nil
	})

	return deleted, err
}

type mirrorRepository struct {
	store *Store
}

func (r *mirrorRepository) UpsertByUsername(ctx context.Context, username, passwordHash string) (*entity.MirrorRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mirrorMu.Lock()
	defer r.store.mirrorMu.Unlock()

	record, ok := r.store.mirror[username]
	if !ok {
		r.store.nextMirrorID++
		record = &entity.MirrorRecord{ID: r.store.nextMirrorID, Username: username}
		r.store.mirror[username] = record
	}
	record.PasswordHash = passwordHash
	record.SyncedAt = r.store.now().UTC()

	cloned := *record

	return &cloned, nil
}

func (r *mirrorRepository) InsertIfMissing(ctx context.Context, username, passwordHash string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.store.mirrorMu.Lock()
	defer r.store.mirrorMu.Unlock()

	if _, ok := r.store.mirror[username]; ok {
		return false, nil
	}

	r.store.nextMirrorID++
	r.store.mirror[username] = &entity.MirrorRecord{
		ID:           r.store.nextMirrorID,
		Username:     username,
		PasswordHash: passwordHash,
		SyncedAt:     r.store.now().UTC(),
	}

	return true, nil
}

func (r *mirrorRepository) FindByUsername(ctx context.Context, username string) (*entity.MirrorRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mirrorMu.RLock()
	defer r.store.mirrorMu.RUnlock()

	record, ok := r.store.mirror[username]
	if !ok {
		return nil, repository.ErrMirrorNotFound
	}
	cloned := *record

	return &cloned, nil
}

func (r *mirrorRepository) FindByUsernames(ctx context.Context, usernames []string) (map[string]*entity.MirrorRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mirrorMu.RLock()
	defer r.store.mirrorMu.RUnlock()

	records := make(map[string]*entity.MirrorRecord, len(usernames))
	for _, username := range usernames {
		if record, ok := r.store.mirror[username]; ok {
			cloned := *record
			records[username] = &cloned
		}
	}

	return records, nil
}

