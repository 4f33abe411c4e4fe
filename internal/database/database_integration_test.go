package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"claimdesk/config"
	"claimdesk/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNew_FailsWithoutCache(t *testing.T) {
	testConfig := config.Config{
		DatabaseDbPath:       ":memory:",
		DatabaseCacheAddress: "",
		DatabaseCachePort:    0,
	}

	// SQL setup succeeds, cache client creation does not.
	_, err := New(testConfig)
	assert.Error(t, err)
}

func TestNew_EmptyDatabasePath(t *testing.T) {
	invalidConfig := config.Config{
		DatabaseDbPath: "",
	}

	_, err := New(invalidConfig)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database path is empty")
}

func TestInitializeSQLiteDB_FilePath(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	testConfig := config.Config{
		DatabaseDbPath: dbPath,
	}

	err := db.initializeSQLiteDB(&gorm.Config{}, testConfig)
	assert.NoError(t, err)
	assert.NotNil(t, db.SQL)
	assert.FileExists(t, dbPath)

	_ = db.Close()
}

func TestInitializeSQLiteDB_EmptyPath(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	err := db.initializeSQLiteDB(&gorm.Config{}, config.Config{DatabaseDbPath: ""})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database path is empty")
}

func TestInitializeSQLiteDB_InMemory(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	err := db.initializeSQLiteDB(&gorm.Config{}, config.Config{DatabaseDbPath: ":memory:"})
	require.NoError(t, err)
	require.NotNil(t, db.SQL)

	sqlDB, err := db.SQL.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())

	_ = sqlDB.Close()
}

func TestClose_WithSQLDB(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	err := db.initializeSQLiteDB(&gorm.Config{}, config.Config{DatabaseDbPath: ":memory:"})
	require.NoError(t, err)

	assert.NoError(t, db.Close())
}

func TestClose_WithNilSQL(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
		SQL: nil,
	}

	assert.NoError(t, db.Close())
}

func TestSQLWithContext(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	err := db.initializeSQLiteDB(&gorm.Config{}, config.Config{DatabaseDbPath: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	gormDB := db.SQLWithContext(context.Background())

	assert.NotNil(t, gormDB)
	assert.NotEqual(t, db.SQL, gormDB)
}

func TestInitializeCacheDB_MissingConfig(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	err := db.initializeCacheDB(config.Config{
		DatabaseCacheAddress: "",
		DatabaseCachePort:    6379,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "address or port is empty")

	err = db.initializeCacheDB(config.Config{
		DatabaseCacheAddress: "localhost",
		DatabaseCachePort:    0,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "address or port is empty")
}

// A nil cache client degrades to a miss, never an error. Repositories rely
// on this in environments without a running valkey.

func TestCacheBuilder_NilClient_Get(t *testing.T) {
	var dest string
	found, err := NewCacheBuilder(nil, "key").Get(&dest)

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, dest)
}

func TestCacheBuilder_NilClient_Set(t *testing.T) {
	err := NewCacheBuilder(nil, "key").
		WithStruct(map[string]int{"a": 1}).
		WithTTL(time.Minute).
		WithContext(context.Background()).
		Set()

	assert.NoError(t, err)
}

func TestCacheBuilder_NilClient_Delete(t *testing.T) {
	assert.NoError(t, NewCacheBuilder(nil, "key").Delete())
}
