package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beesaferoot/hotel-booking/internal/config"
	"github.com/beesaferoot/hotel-booking/internal/hotel"
)

func TestOpen(t *testing.T) {
	cfg := &config.Config{SeedCatalog: true}
	db, err := Open(cfg)
	require.NoError(t, err)
	defer Close(db)

	var rooms, meals int64
	require.NoError(t, db.Model(&hotel.Room{}).Count(&rooms).Error)
	require.NoError(t, db.Model(&hotel.Meal{}).Count(&meals).Error)
	assert.Equal(t, int64(6), rooms)
	assert.Equal(t, int64(4), meals)

	pending, err := Migrator(db, cfg).Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestOpen_SessionsAreIsolated(t *testing.T) {
	cfg := &config.Config{SeedCatalog: true}
	first, err := Open(cfg)
	require.NoError(t, err)
	defer Close(first)

	second, err := Open(cfg)
	require.NoError(t, err)
	defer Close(second)

	require.NoError(t, first.Model(&hotel.Room{}).Where("number = ?", 101).Update("available", false).Error)

	var room hotel.Room
	require.NoError(t, second.Where("number = ?", 101).First(&room).Error)
	assert.True(t, room.Available)
}

func TestClose(t *testing.T) {
	db, err := Open(&config.Config{})
	require.NoError(t, err)
	require.NoError(t, Close(db))

	var n int64
	assert.Error(t, db.Model(&hotel.Room{}).Count(&n).Error)
}
