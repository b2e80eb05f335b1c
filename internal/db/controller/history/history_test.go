package history

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pgen-dev/pgen/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// a second pooled connection would see a different in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Generation{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedGenerations inserts test data into the database.
func seedGenerations(t *testing.T, db *gorm.DB, generations []models.Generation) {
	t.Helper()
	for _, g := range generations {
		err := db.Create(&g).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestRecord(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		generation    *models.Generation
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			generation:    &models.Generation{},
			expectedError: ErrDBNil,
		},
		{
			name:          "nil generation",
			dbParam:       db,
			expectedError: ErrGenerationNil,
		},
		{
			name:    "successful record",
			dbParam: db,
			generation: &models.Generation{
				Length:      16,
				Count:       2,
				CharsetSize: 92,
				EntropyBits: 104.38,
				Algorithm:   "mix64",
				Sinks:       "stdout",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Record(tc.dbParam, tc.generation)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, tc.generation.ID)
			assert.False(t, tc.generation.CreatedAt.IsZero())
		})
	}
}

func TestList(t *testing.T) {
	db := setupTestDB(t)

	now := time.Now()
	seedGenerations(t, db, []models.Generation{
		{CreatedAt: now.Add(-2 * time.Hour), Length: 8, Count: 1, CharsetSize: 10, Algorithm: "mix64"},
		{CreatedAt: now.Add(-1 * time.Hour), Length: 12, Count: 1, CharsetSize: 62, Algorithm: "mix64"},
		{CreatedAt: now, Length: 20, Count: 3, CharsetSize: 92, Algorithm: "chacha20"},
	})

	testCases := []struct {
		name           string
		dbParam        *gorm.DB
		limit          int
		expectedError  error
		expectedLength []int
	}{
		{name: "nil database", limit: 1, expectedError: ErrDBNil},
		{name: "zero limit", dbParam: db, limit: 0, expectedError: ErrInvalidLimit},
		{name: "newest first", dbParam: db, limit: 10, expectedLength: []int{20, 12, 8}},
		{name: "limited", dbParam: db, limit: 2, expectedLength: []int{20, 12}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			generations, err := List(tc.dbParam, tc.limit)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, generations)

				return
			}

			require.NoError(t, err)

			lengths := make([]int, 0, len(generations))
			for _, g := range generations {
				lengths = append(lengths, g.Length)
			}

			assert.Equal(t, tc.expectedLength, lengths)
		})
	}
}

func TestCountAndPurge(t *testing.T) {
	db := setupTestDB(t)

	_, err := Count(nil)
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Purge(nil)
	require.ErrorIs(t, err, ErrDBNil)

	seedGenerations(t, db, []models.Generation{
		{Length: 8, Count: 1, CharsetSize: 10, Algorithm: "mix64"},
		{Length: 9, Count: 1, CharsetSize: 10, Algorithm: "mix64"},
	})

	count, err := Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	removed, err := Purge(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	count, err = Count(db)
	require.NoError(t, err)
	assert.Zero(t, count)
}
