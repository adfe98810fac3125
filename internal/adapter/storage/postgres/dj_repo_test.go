package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"tipcloud/internal/core/domain"
	"tipcloud/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestDJ() *domain.DJProfile {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.DJProfile{
		ID:            "8f14e45f-ceea-467f-a0e6-1b2c3d4e5f60",
		UserID:        strPtr("8f14e45f-ceea-467f-a0e6-1b2c3d4e5f60"),
		Name:          "Nova Pulse",
		Genre:         "Techno",
		Bio:           "Warehouse techno from Berlin.",
		SoundCloudURL: "https://soundcloud.com/novapulse",
		WalletAddress: "SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7",
		ImageURL:      strPtr("https://i1.sndcdn.com/nova.jpg"),
		Followers:     1200,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func djCols() []string {
	return []string{"id", "user_id", "name", "genre", "bio", "soundcloud_url", "wallet_address", "image_url", "followers", "created_at", "updated_at"}
}

func djRow(rows *pgxmock.Rows, dj *domain.DJProfile) *pgxmock.Rows {
	return rows.AddRow(
		dj.ID, dj.UserID, dj.Name, dj.Genre, dj.Bio,
		dj.SoundCloudURL, dj.WalletAddress, dj.ImageURL, dj.Followers,
		dj.CreatedAt, dj.UpdatedAt,
	)
}

func TestDJRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDJRepo(mock)
	dj := newTestDJ()

	mock.ExpectExec("INSERT INTO dj_profiles").
		WithArgs(dj.ID, dj.UserID, dj.Name, dj.Genre, dj.Bio,
			dj.SoundCloudURL, dj.WalletAddress, dj.ImageURL, dj.Followers,
			dj.CreatedAt, dj.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), dj))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDJRepo_Create_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDJRepo(mock)

	mock.ExpectExec("INSERT INTO dj_profiles").
		WillReturnError(errors.New("connection reset"))

	err = repo.Create(context.Background(), newTestDJ())
	assert.ErrorContains(t, err, "insert dj profile")
}

func TestDJRepo_Create_OwnerTaken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDJRepo(mock)

	mock.ExpectExec("INSERT INTO dj_profiles").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "dj_profiles_user_id_key"})

	err = repo.Create(context.Background(), newTestDJ())
	assert.ErrorIs(t, err, ports.ErrDuplicate)
}

func TestDJRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDJRepo(mock)
	dj := newTestDJ()

	mock.ExpectQuery("SELECT .+ FROM dj_profiles WHERE id").
		WithArgs(dj.ID).
		WillReturnRows(djRow(pgxmock.NewRows(djCols()), dj))

	result, err := repo.GetByID(context.Background(), dj.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, dj.Name, result.Name)
	assert.Equal(t, *dj.ImageURL, *result.ImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDJRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDJRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM dj_profiles WHERE id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(djCols()))

	result, err := repo.GetByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestDJRepo_GetByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDJRepo(mock)
	dj := newTestDJ()

	mock.ExpectQuery("SELECT .+ FROM dj_profiles WHERE user_id").
		WithArgs(*dj.UserID).
		WillReturnRows(djRow(pgxmock.NewRows(djCols()), dj))

	result, err := repo.GetByUserID(context.Background(), *dj.UserID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, dj.ID, result.ID)
}

func TestDJRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDJRepo(mock)
	first := newTestDJ()
	second := newTestDJ()
	second.ID = "other"
	second.ImageURL = nil

	rows := pgxmock.NewRows(djCols())
	djRow(rows, first)
	djRow(rows, second)
	mock.ExpectQuery("SELECT .+ FROM dj_profiles ORDER BY created_at DESC").
		WillReturnRows(rows)

	result, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "other", result[1].ID)
	assert.Nil(t, result[1].ImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDJRepo_List_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDJRepo(mock)
	mock.ExpectQuery("SELECT .+ FROM dj_profiles").
		WillReturnError(errors.New("connection reset"))

	_, err = repo.List(context.Background())
	assert.ErrorContains(t, err, "list dj profiles")
}
