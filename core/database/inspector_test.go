package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE tvdb_episode (id INTEGER PRIMARY KEY, series_id INTEGER NOT NULL, episode_name TEXT, overview TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "tvdb_episode")
	require.NoError(t, err)
	assert.Len(t, columns, 4)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "integer", colMap["id"].Type)
	assert.Equal(t, "PRI", colMap["id"].Key)
	assert.Equal(t, "NO", colMap["series_id"].Null)
	assert.Equal(t, "text", colMap["episode_name"].Type)
	assert.Equal(t, "YES", colMap["overview"].Null)

	// PRAGMA table_info returns an empty result for a missing table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_InvalidName(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	cols, err := GetTableColumns(db, "episodes'; DROP TABLE x; --")
	assert.Error(t, err)
	assert.Nil(t, cols)
}
