package venue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&Venue{}))
	return db
}

func TestUpsertVenueInsertsOnce(t *testing.T) {
	repo := NewGormVenueRepository(setupTestDB(t))

	first, err := repo.UpsertVenue("Clementi Sports Hall", "Badminton")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := repo.UpsertVenue("Clementi Sports Hall", "Badminton")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	venues, err := repo.GetVenuesBySport("Badminton")
	require.NoError(t, err)
	assert.Len(t, venues, 1)
}

func TestSameNameDifferentSport(t *testing.T) {
	repo := NewGormVenueRepository(setupTestDB(t))

	_, err := repo.UpsertVenue("Our Tampines Hub", "Badminton")
	require.NoError(t, err)
	_, err = repo.UpsertVenue("Our Tampines Hub", "Basketball")
	require.NoError(t, err)

	badminton, err := repo.GetVenuesBySport("Badminton")
	require.NoError(t, err)
	basketball, err := repo.GetVenuesBySport("Basketball")
	require.NoError(t, err)
	assert.Len(t, badminton, 1)
	assert.Len(t, basketball, 1)
}

func TestGetVenuesBySportSorted(t *testing.T) {
	repo := NewGormVenueRepository(setupTestDB(t))

	for _, name := range []string{"Yio Chu Kang Sports Hall", "Bedok Sports Hall", "Clementi Sports Hall"} {
		_, err := repo.UpsertVenue(name, "Badminton")
		require.NoError(t, err)
	}

	venues, err := repo.GetVenuesBySport("Badminton")
	require.NoError(t, err)
	require.Len(t, venues, 3)
	assert.Equal(t, "Bedok Sports Hall", venues[0].Name)
	assert.Equal(t, "Clementi Sports Hall", venues[1].Name)
	assert.Equal(t, "Yio Chu Kang Sports Hall", venues[2].Name)
}

func TestGetVenuesBySportEmpty(t *testing.T) {
	repo := NewGormVenueRepository(setupTestDB(t))

	venues, err := repo.GetVenuesBySport("Tennis")
	require.NoError(t, err)
	assert.Empty(t, venues)
}
