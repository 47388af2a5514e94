package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"
	"testing"

	"blogauth/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newLoggedMockDB(t *testing.T, cfg *config.Config) (*gorm.DB, sqlmock.Sqlmock, *bytes.Buffer) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	var buf bytes.Buffer
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), cfg),
	})
	require.NoError(t, err)

	return db, mock, &buf
}

func TestGormSlogLogger_FailedStatementOmitsBoundValues(t *testing.T) {
	db, mock, buf := newLoggedMockDB(t, &config.Config{})
	const hash = "$2a$10$SECRETHASHVALUEforalicexxxxxxxxxxxxxxxxxxxxxxxxxx"

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "legacy_users"`)).
		WillReturnError(errors.New("connection reset by peer"))

	_, err := NewMirrorRepository(db).UpsertByUsername(context.Background(), "alice", hash)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "GORM query failed")
	assert.Contains(t, out, "$2")
	assert.NotContains(t, out, hash)
	assert.NotContains(t, out, "SECRETHASHVALUE")
	assert.NotContains(t, out, "'alice'")
}

func TestGormSlogLogger_DebugStatementOmitsBoundValues(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	db, mock, buf := newLoggedMockDB(t, cfg)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reset_tokens"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	var rows []map[string]any
	require.NoError(t, db.WithContext(context.Background()).
		Table("reset_tokens").
		Where("token_hash = ?", "deadbeefcafe").
		Find(&rows).Error)

	out := buf.String()
	assert.Contains(t, out, "GORM query")
	assert.Contains(t, out, "token_hash = $1")
	assert.NotContains(t, out, "deadbeefcafe")
}

func TestGormSlogLogger_MissingRowIsNotAnError(t *testing.T) {
	db, mock, buf := newLoggedMockDB(t, &config.Config{})

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "legacy_users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewMirrorRepository(db).FindByUsername(context.Background(), "ghost")
	require.Error(t, err)

	assert.NotContains(t, buf.String(), "GORM query failed")
}
