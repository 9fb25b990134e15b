package analysis

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrube/employerstocks/internal/models"
)

func dec(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func okSnapshot(name, ticker string, price float64) models.Snapshot {
	return models.Snapshot{
		CompanyName: name,
		Ticker:      ticker,
		Price:       dec(price),
		Status:      models.StatusOK,
	}
}

func TestAggregateIntersectsByTicker(t *testing.T) {
	setA := ResultSet{
		okSnapshot("Acme Inc.", "ACME", 100),
		okSnapshot("Initech", "INTC", 45),
	}
	setB := ResultSet{
		okSnapshot("Globex", "GLBX", 80),
		okSnapshot("ACME Corporation", "acme", 101), // same ticker, different case
	}

	outA, outB, common := Aggregate(setA, setB)

	assert.Equal(t, setA, outA)
	assert.Equal(t, setB, outB)
	require.Len(t, common, 1)
	assert.Equal(t, "ACME", common[0].Ticker)
}

func TestAggregateFallsBackToNormalizedName(t *testing.T) {
	setA := ResultSet{models.NoTickerSnapshot("Acme Corp.")}
	setB := ResultSet{models.NoTickerSnapshot("ACME CORP")}

	_, _, common := Aggregate(setA, setB)

	require.Len(t, common, 1)
	assert.Equal(t, "Acme Corp.", common[0].CompanyName)
}

func TestAggregateCommonDedupesAndKeepsSetAOrder(t *testing.T) {
	setA := ResultSet{
		okSnapshot("Zeta", "ZETA", 10),
		okSnapshot("Acme Inc.", "ACME", 100),
		okSnapshot("Acme Incorporated", "ACME", 100), // duplicate in A
	}
	setB := ResultSet{
		okSnapshot("Acme", "ACME", 100),
		okSnapshot("Zeta Co", "ZETA", 10),
	}

	_, _, common := Aggregate(setA, setB)

	require.Len(t, common, 2)
	assert.Equal(t, "ZETA", common[0].Ticker)
	assert.Equal(t, "ACME", common[1].Ticker)
}

func TestAggregatePrefersMoreCompleteSide(t *testing.T) {
	failed := models.FetchFailedSnapshot("Acme Inc.", "ACME")
	full := okSnapshot("Acme", "ACME", 100)
	full.Sector = "Technology"

	_, _, common := Aggregate(ResultSet{failed}, ResultSet{full})

	require.Len(t, common, 1)
	assert.Equal(t, models.StatusOK, common[0].Status)
	assert.Equal(t, "Technology", common[0].Sector)
}

func TestAggregateIsIdempotent(t *testing.T) {
	setA := ResultSet{
		okSnapshot("Acme Inc.", "ACME", 100),
		models.NoTickerSnapshot("Globex"),
		okSnapshot("Initech", "ITC", 45),
	}
	setB := ResultSet{
		models.NoTickerSnapshot("GLOBEX Inc"),
		okSnapshot("Acme", "ACME", 100),
	}

	_, _, first := Aggregate(setA, setB)
	_, _, second := Aggregate(setA, setB)

	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, "ACME", first[0].Ticker)
	assert.Equal(t, "Globex", first[1].CompanyName)
}

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"Acme Corp.":          "acme",
		"ACME CORP":           "acme",
		"  Acme,  Inc. ":      "acme",
		"Globex Holdings LLC": "globex",
		"McDonald's":          "mcdonalds",
		"The Company":         "the",
		"Co":                  "co", // single token never stripped away
		"7-Eleven":            "7eleven",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeName(in), "input %q", in)
	}
}

func TestIdentityKeySeparatesNamespaces(t *testing.T) {
	withTicker := okSnapshot("Acme Inc.", "ACME", 1)
	nameOnly := models.NoTickerSnapshot("acme")
	assert.NotEqual(t, IdentityKey(withTicker), IdentityKey(nameOnly))
	assert.Equal(t, "ticker:ACME", IdentityKey(withTicker))
	assert.Equal(t, "name:acme", IdentityKey(nameOnly))
}
