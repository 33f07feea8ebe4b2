package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{"players", "boards", "games"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "Querying for %s table should not produce an error", table)
		assert.Equal(t, table, name, "The '%s' table should be created", table)
	}
}

func TestInitDB_EnforcesForeignKeys(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec(`INSERT INTO games (id, winner_id, loser_id, date_played, created_at) VALUES ('g1', 'nobody', 'ghost', 0, 0)`)
	assert.Error(t, err, "games must reference existing players")
}

func TestLocalDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?_foreign_keys=on", localDSN(":memory:"))
	assert.Equal(t, "file:cribbage.db?_foreign_keys=on", localDSN("cribbage.db"))
	assert.Equal(t, "file:cribbage.db?cache=shared&_foreign_keys=on", localDSN("file:cribbage.db?cache=shared"))
}
