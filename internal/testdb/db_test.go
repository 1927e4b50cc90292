package testdb_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdw-edu/questions-api/internal/testdb"
)

func countUsers(t *testing.T, q interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}) int {
	t.Helper()
	var n int
	require.NoError(t, q.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM users").Scan(&n))
	return n
}

func TestGetTestDBWithT(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)
	assert.Equal(t, 0, countUsers(t, db))

	var fk int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk, "foreign keys must be enforced")
}

func TestDatabasesAreIsolated(t *testing.T) {
	t.Parallel()

	first := testdb.GetTestDBWithT(t)
	second := testdb.GetTestDBWithT(t)

	_, err := first.Exec(`INSERT INTO users (username, email, password_hash) VALUES ('a', 'a@x.com', 'h')`)
	require.NoError(t, err)

	assert.Equal(t, 1, countUsers(t, first))
	assert.Equal(t, 0, countUsers(t, second))
}

func TestWithTxRollsBack(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		_, err := tx.Exec(`INSERT INTO users (username, email, password_hash) VALUES ('a', 'a@x.com', 'h')`)
		require.NoError(t, err)
		assert.Equal(t, 1, countUsers(t, tx))
	})

	assert.Equal(t, 0, countUsers(t, db))
}
