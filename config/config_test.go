package config_test

import (
	"testing"

	"pizzeria-api/config"
	"pizzeria-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func connect(t *testing.T) {
	t.Helper()
	require.NoError(t, config.ConnectDB("file:"+t.Name()+"?mode=memory&cache=shared"))
}

func TestSeedCatalogIsIdempotent(t *testing.T) {
	connect(t)

	require.NoError(t, config.SeedCatalog(config.DB))
	require.NoError(t, config.SeedCatalog(config.DB))

	var count int64
	require.NoError(t, config.DB.Model(&models.Pizza{}).Count(&count).Error)
	assert.Equal(t, int64(6), count)

	var margherita models.Pizza
	require.NoError(t, config.DB.Where("slug = ?", "margherita").First(&margherita).Error)
	assert.Equal(t, "Margherita", margherita.Name)
	assert.Equal(t, "25", margherita.Price.String())
}

func TestSeedAdminUser(t *testing.T) {
	connect(t)

	require.NoError(t, config.SeedAdminUser(config.DB))
	require.NoError(t, config.SeedAdminUser(config.DB))

	var admins []models.User
	require.NoError(t, config.DB.Where("role = ?", models.RoleAdmin).Find(&admins).Error)
	require.Len(t, admins, 1)

	admin := admins[0]
	assert.Equal(t, "admin@pizzaria.com", admin.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin")))
}
