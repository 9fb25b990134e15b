package marketdata

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrube/employerstocks/internal/models"
)

const fullQuoteFixture = `{
	"quoteSummary": {
		"result": [{
			"price": {
				"shortName": "Acme Corporation",
				"regularMarketPrice": {"raw": 100.5, "fmt": "100.50"},
				"marketCap": {"raw": 2500000000, "fmt": "2.5B"}
			},
			"summaryProfile": {"sector": "Technology", "industry": "Software"},
			"summaryDetail": {"trailingPE": {"raw": 24.3, "fmt": "24.30"}}
		}],
		"error": null
	}
}`

func TestFetchPopulatesAllFields(t *testing.T) {
	getter := &stubJSONGetter{payload: fullQuoteFixture}
	q := NewQuotes(getter)

	snap := q.Fetch(context.Background(), "Acme Inc.", "ACME")

	assert.Equal(t, models.StatusOK, snap.Status)
	assert.Equal(t, "Acme Inc.", snap.CompanyName)
	assert.Equal(t, "ACME", snap.Ticker)
	assert.Equal(t, "Acme Corporation", snap.ShortName)
	require.NotNil(t, snap.Price)
	assert.Equal(t, "100.5", snap.Price.String())
	assert.Equal(t, "Technology", snap.Sector)
	assert.Equal(t, "Software", snap.Industry)
	require.NotNil(t, snap.MarketCap)
	assert.Equal(t, "2500000000", snap.MarketCap.String())
	require.NotNil(t, snap.PERatio)
	assert.Equal(t, "24.3", snap.PERatio.String())

	require.Len(t, getter.urls, 1)
	assert.Contains(t, getter.urls[0], "/quoteSummary/ACME?modules=price,summaryProfile,summaryDetail")
}

func TestFetchKeepsMissingFieldsAbsent(t *testing.T) {
	getter := &stubJSONGetter{payload: `{
		"quoteSummary": {
			"result": [{
				"price": {"shortName": "Acme Corporation"}
			}]
		}
	}`}
	q := NewQuotes(getter)

	snap := q.Fetch(context.Background(), "Acme Inc.", "ACME")

	assert.Equal(t, models.StatusOK, snap.Status)
	assert.Equal(t, "Acme Corporation", snap.ShortName)
	assert.Nil(t, snap.Price)
	assert.Nil(t, snap.MarketCap)
	assert.Nil(t, snap.PERatio)
	assert.Empty(t, snap.Sector)
	assert.Empty(t, snap.Industry)
}

func TestFetchEmptyResultIsNoData(t *testing.T) {
	q := NewQuotes(&stubJSONGetter{payload: `{"quoteSummary": {"result": []}}`})
	snap := q.Fetch(context.Background(), "Acme Inc.", "ACME")
	assert.Equal(t, models.StatusNoData, snap.Status)
	assert.Equal(t, "ACME", snap.Ticker)
	assert.Nil(t, snap.Price)
}

func TestFetchErrorDegradesToFetchFailed(t *testing.T) {
	q := NewQuotes(&stubJSONGetter{err: errors.New("upstream returned 500 Internal Server Error")})
	snap := q.Fetch(context.Background(), "Acme Inc.", "ACME")

	assert.Equal(t, models.StatusFetchFailed, snap.Status)
	assert.Equal(t, "Acme Inc.", snap.CompanyName)
	assert.Equal(t, "ACME", snap.Ticker)
	assert.Nil(t, snap.Price)
	assert.Nil(t, snap.MarketCap)
	assert.Nil(t, snap.PERatio)
}
