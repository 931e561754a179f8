package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resonate/internal/core/domain"
)

var publisherColumns = []string{
	"id", "city_id", "name", "citywide", "reach_units", "languages", "demographics",
	"pricing_model", "flat_rate", "cpm", "min_spend", "audience_size", "engagement_rate",
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListPublishers(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows(publisherColumns).
		AddRow("el-tecolote", "sf", "El Tecolote", false, []string{"mission", "bayview"}, []string{"en", "es"},
			[]byte(`{"seniors":0.2,"low_income":0.6}`), "flat", int64(120000), int64(0), int64(0), int64(40000), 0.12).
		AddRow("broken", "sf", "Broken Row", false, []string{"mission"}, []string{"en"},
			[]byte(`{"seniors":`), "flat", int64(1), int64(0), int64(0), int64(1), 0.0).
		AddRow("sf-chronicle", "sf", "SF Chronicle", true, []string{}, []string{"en"},
			nil, "cpm", int64(0), int64(1800), int64(250000), int64(900000), 0.03)
	mock.ExpectQuery("SELECT (.+) FROM publishers").
		WithArgs("sf").
		WillReturnRows(rows)

	repo := NewPublisherRepository(mock, discardLogger())
	pubs, err := repo.ListPublishers(context.Background(), "sf")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, pubs, 2, "malformed demographics row is skipped")
	assert.Equal(t, domain.PublisherProfile{
		ID:             "el-tecolote",
		CityID:         "sf",
		Name:           "El Tecolote",
		ReachUnits:     []string{"mission", "bayview"},
		Languages:      []string{"en", "es"},
		Demographics:   domain.Demographics{"seniors": 0.2, "low_income": 0.6},
		Pricing:        domain.Pricing{Model: domain.PricingFlat, FlatRate: 120000},
		AudienceSize:   40000,
		EngagementRate: 0.12,
	}, pubs[0])

	assert.Equal(t, "sf-chronicle", pubs[1].ID)
	assert.True(t, pubs[1].Citywide)
	assert.Equal(t, domain.PricingCPM, pubs[1].Pricing.Model)
	assert.Equal(t, int64(250000), pubs[1].Cost())
	assert.Nil(t, pubs[1].Demographics)
}

func TestListPublishers_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM publishers").
		WithArgs("sf").
		WillReturnError(errors.New("relation \"publishers\" does not exist"))

	repo := NewPublisherRepository(mock, discardLogger())
	_, err = repo.ListPublishers(context.Background(), "sf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query publishers")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPublishers_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM publishers").
		WithArgs("nowhere").
		WillReturnRows(pgxmock.NewRows(publisherColumns))

	repo := NewPublisherRepository(mock, discardLogger())
	pubs, err := repo.ListPublishers(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Empty(t, pubs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertPublisher(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	p := domain.PublisherProfile{
		ID:           "wind-newspaper",
		CityID:       "sf",
		Name:         "Wind Newspaper",
		ReachUnits:   []string{"chinatown"},
		Languages:    []string{"yue"},
		Pricing:      domain.Pricing{FlatRate: 45000},
		AudienceSize: 12000,
	}
	mock.ExpectExec("INSERT INTO publishers").
		WithArgs("wind-newspaper", "sf", "Wind Newspaper", false, []string{"chinatown"}, []string{"yue"}, []byte(`{}`),
			"flat", int64(45000), int64(0), int64(0), int64(12000), 0.0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewPublisherRepository(mock, discardLogger())
	require.NoError(t, repo.UpsertPublisher(context.Background(), p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertPublisher_RejectsInvalid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPublisherRepository(mock, discardLogger())
	err = repo.UpsertPublisher(context.Background(), domain.PublisherProfile{ID: "nowhere"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reach must be citywide")
	assert.NoError(t, mock.ExpectationsWereMet())
}
