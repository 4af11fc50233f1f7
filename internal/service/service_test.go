package service

import (
	"path/filepath"
	"testing"
	"time"

	"posyandu_system/internal/config"
	"posyandu_system/internal/db"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{DBDriver: config.DriverSQLite, DBDSN: filepath.Join(t.TempDir(), "test.db")}
	gdb, err := db.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTTTL: time.Hour, BcryptCost: bcrypt.MinCost}
}
