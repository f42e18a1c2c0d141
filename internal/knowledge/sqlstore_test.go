package knowledge

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SYLESH-1125/SIH/internal/config"
	"github.com/SYLESH-1125/SIH/internal/observability"
)

func TestSQLStore_RoundTrip(t *testing.T) {
	dbCfg := config.DatabaseConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "kb.db")},
	}

	db, err := OpenDB(dbCfg)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, EnsureSchema(db))

	source := NewBuiltinStore()
	rows, err := InsertEntries(db, dbCfg.Driver, source.Entries())
	require.NoError(t, err)
	assert.Greater(t, rows, source.Len())

	loaded := Load(config.KnowledgeConfig{Source: "sql", Database: dbCfg}, observability.NopLogger())
	assert.Equal(t, source.Len(), loaded.Len())

	rice, ok := loaded.Get("crops", "rice")
	require.True(t, ok)
	assert.Contains(t, rice.Content("en"), "staple grain")
}

func TestSQLStore_InsertReplacesExisting(t *testing.T) {
	dbCfg := config.DatabaseConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "kb.db")},
	}

	db, err := OpenDB(dbCfg)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, EnsureSchema(db))

	entry := Entry{Category: "crops", Item: "rice", Translations: map[string]string{"en": "first"}}
	_, err = InsertEntries(db, dbCfg.Driver, []Entry{entry})
	require.NoError(t, err)

	entry.Translations["en"] = "second"
	_, err = InsertEntries(db, dbCfg.Driver, []Entry{entry})
	require.NoError(t, err)

	loaded := Load(config.KnowledgeConfig{Source: "sql", Database: dbCfg}, observability.NopLogger())
	rice, ok := loaded.Get("crops", "rice")
	require.True(t, ok)
	assert.Equal(t, "second", rice.Content("en"))
}

func TestOpenDB_UnsupportedDriver(t *testing.T) {
	_, err := OpenDB(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
