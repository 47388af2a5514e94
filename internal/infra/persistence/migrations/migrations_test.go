package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsOrderedMigrations(t *testing.T) {
	names, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"00001_identities.sql",
		"00002_password_reset_tokens.sql",
		"00003_legacy_users.sql",
	}, names)
}

func TestLegacyUsersMigration_DeduplicatesBeforeUniqueIndex(t *testing.T) {
	body, err := fs.ReadFile(FS, "00003_legacy_users.sql")
	require.NoError(t, err)

	sqlText := string(body)
	assert.Contains(t, sqlText, "DELETE FROM legacy_users")
	assert.Contains(t, sqlText, "CREATE UNIQUE INDEX IF NOT EXISTS idx_legacy_users_username")
	assert.Less(t, strings.Index(sqlText, "DELETE FROM"), strings.Index(sqlText, "CREATE UNIQUE INDEX"))
}

func TestUp_UsesEmbeddedRoot(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var gotDir string
	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir

		return nil
	}

	require.NoError(t, Up(context.Background(), db))
	assert.Equal(t, ".", gotDir)
}

func TestUp_PropagatesError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	boom := errors.New("boom")
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return boom
	}

	err = Up(context.Background(), db)
	assert.ErrorIs(t, err, boom)
}
