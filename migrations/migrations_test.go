package migrations_test

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-api/migrations"
)

func read(t *testing.T, r io.ReadCloser) string {
	t.Helper()
	defer r.Close()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestSource_PrimeraVersion(t *testing.T) {
	src, err := migrations.Source()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, ident, err := src.ReadUp(first)
	require.NoError(t, err)
	assert.Equal(t, "ledger", ident)
	assert.Contains(t, read(t, up), "CREATE TABLE IF NOT EXISTS daily_closings")

	down, _, err := src.ReadDown(first)
	require.NoError(t, err)
	assert.Contains(t, read(t, down), "DROP TABLE IF EXISTS daily_closings")
}

// Toda versión se puede revertir.
func TestSource_CadaUpTieneDown(t *testing.T) {
	src, err := migrations.Source()
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	for {
		up, _, err := src.ReadUp(version)
		require.NoError(t, err, "up %d", version)
		up.Close()
		down, _, err := src.ReadDown(version)
		require.NoError(t, err, "down %d", version)
		down.Close()

		next, err := src.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		require.NoError(t, err)
		assert.Greater(t, next, version)
		version = next
	}
}
