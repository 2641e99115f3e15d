package queries_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/queries"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock, mockDB
}

func TestGetAbandonedCartsQueryHandler_Handle(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	page, err := queries.NewPage(2, 10)
	require.NoError(t, err)
	query := queries.NewGetAbandonedCartsQuery(now, page)

	basketID, ownerID := uuid.New(), uuid.New()
	anonymousID := uuid.New()
	created := now.Add(-10 * 24 * time.Hour)

	mock.ExpectQuery(`SELECT count\(\*\) FROM baskets WHERE status = \$1 AND created_at <= \$2`).
		WithArgs("Open", query.Cutoff()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`FROM baskets b\s+LEFT JOIN users u .* GROUP BY b.id, u.email .* LIMIT \$3 OFFSET \$4`).
		WithArgs("Open", query.Cutoff(), 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "email", "currency", "num_lines", "num_items", "excl", "incl", "created_at",
		}).
			AddRow(basketID.String(), ownerID.String(), "ada@example.com", "GBP", 2, 3, "29.97", "35.97", created).
			AddRow(anonymousID.String(), nil, "", "GBP", 1, 1, "9.99", "9.99", created))

	listing, err := queries.NewGetAbandonedCartsQueryHandler(db).Handle(t.Context(), query)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.EqualValues(t, 12, listing.Total)
	assert.Equal(t, 2, listing.NumPages())
	require.Len(t, listing.Items, 2)

	first := listing.Items[0]
	assert.Equal(t, basketID.String(), first.BasketID.String())
	require.NotNil(t, first.OwnerID)
	assert.Equal(t, ownerID.String(), first.OwnerID.String())
	assert.Equal(t, "ada@example.com", first.OwnerEmail)
	assert.Equal(t, 2, first.NumLines)
	assert.Equal(t, 3, first.NumItems)
	assert.Equal(t, "29.97", first.TotalExclTax.StringFixed(2))
	assert.Equal(t, "35.97", first.TotalInclTax.StringFixed(2))

	assert.Nil(t, listing.Items[1].OwnerID)
}

func TestGetAbandonedCartsQueryHandler_Handle_CountFails(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT count\(\*\) FROM baskets`).WillReturnError(boom)

	query := queries.NewGetAbandonedCartsQuery(time.Now(), queries.Page{Number: 1, Size: 10})
	_, err := queries.NewGetAbandonedCartsQueryHandler(db).Handle(t.Context(), query)
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAbandonedCartsQueryHandler_Handle_NotConstructed(t *testing.T) {
	db, _, mockDB := newMockDB(t)
	defer mockDB.Close()

	_, err := queries.NewGetAbandonedCartsQueryHandler(db).Handle(t.Context(), queries.GetAbandonedCartsQuery{})
	require.ErrorIs(t, err, queries.ErrGetAbandonedCartsQueryIsNotConstructed)
}
