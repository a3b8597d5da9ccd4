package configs

import (
	"os"
	"path/filepath"
	"testing"

	"foodorder/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "restaurant.db?_foreign_keys=on", sqliteDSN("restaurant.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", sqliteDSN("file:x?mode=memory"))
	assert.Equal(t, "x.db?_foreign_keys=off", sqliteDSN("x.db?_foreign_keys=off"))
}

func TestConnectionDBUnknownDriver(t *testing.T) {
	_, err := ConnectionDB("oracle", "whatever")
	assert.Error(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")

	cfg := LoadConfig()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 2*60*60, int(cfg.JWTTTL.Seconds()))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestSeed(t *testing.T) {
	data, err := LoadSeed("")
	require.NoError(t, err)
	require.Len(t, data.Accounts, 3)
	require.Len(t, data.Restaurants, 2)

	db, err := ConnectionDB("sqlite", "file:TestSeed?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, SetupDatabase(db))

	require.NoError(t, Seed(db, data))
	// a second run leaves existing data alone
	require.NoError(t, Seed(db, data))

	var accounts int64
	require.NoError(t, db.Model(&entity.Account{}).Count(&accounts).Error)
	assert.Equal(t, int64(3), accounts)

	var krusty entity.Restaurant
	require.NoError(t, db.Preload("MenuItems").Preload("Employees").Where("name = ?", "Krusty Krab").First(&krusty).Error)
	assert.Equal(t, "patrick", krusty.Owner)
	assert.Len(t, krusty.MenuItems, 4)
	assert.Len(t, krusty.Employees, 2)
	prices := map[string]int64{}
	for _, it := range krusty.MenuItems {
		prices[it.Name] = it.Price
	}
	assert.Equal(t, int64(375), prices["Krabby Patty"])
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
accounts:
  - {username: solo, password: password, firstName: Solo, lastName: User}
restaurants: []
`), 0o600))

	data, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, data.Accounts, 1)
	assert.Equal(t, "solo", data.Accounts[0].Username)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
