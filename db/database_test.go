package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   uint
	Name string
}

func TestInitializeAndMigrate(t *testing.T) {
	defer func() { DB = nil }()

	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, Initialize(path, "production"))

	require.NoError(t, AutoMigrate(&widget{}))
	require.NoError(t, DB.Create(&widget{Name: "stage"}).Error)

	var count int64
	DB.Model(&widget{}).Count(&count)
	assert.Equal(t, int64(1), count)

	assert.NoError(t, Close())
}

func TestAutoMigrateWithoutConnection(t *testing.T) {
	DB = nil
	err := AutoMigrate(&widget{})
	assert.EqualError(t, err, "database not initialized")
	assert.NoError(t, Close())
}

func TestRemoteDSN(t *testing.T) {
	dsn, err := RemoteDSN("libsql://fyyur-org.turso.io", "secret-token")
	require.NoError(t, err)
	assert.Equal(t, "libsql://fyyur-org.turso.io?authToken=secret-token", dsn)

	dsn, err = RemoteDSN("http://127.0.0.1:8081", "")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8081", dsn)

	_, err = RemoteDSN("not a url", "x")
	assert.Error(t, err)
}
