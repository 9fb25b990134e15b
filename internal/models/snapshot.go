package models

import "github.com/shopspring/decimal"

// Status describes the outcome of the resolve/fetch chain for one company.
type Status int

const (
	StatusOK Status = iota
	StatusNoTicker
	StatusNoData
	StatusFetchFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNoTicker:
		return "NO_TICKER"
	case StatusNoData:
		return "NO_DATA"
	case StatusFetchFailed:
		return "FETCH_FAILED"
	default:
		return "UNKNOWN"
	}
}

// Snapshot is a point-in-time read of market data for one company.
// Nil pointers and empty strings mean the upstream did not provide the
// field, which is distinct from a failed fetch (see Status).
type Snapshot struct {
	CompanyName string
	Ticker      string
	ShortName   string
	Price       *decimal.Decimal
	Sector      string
	Industry    string
	MarketCap   *decimal.Decimal
	PERatio     *decimal.Decimal
	Status      Status
}

func NoTickerSnapshot(companyName string) Snapshot {
	return Snapshot{CompanyName: companyName, Status: StatusNoTicker}
}

func NoDataSnapshot(companyName, ticker string) Snapshot {
	return Snapshot{CompanyName: companyName, Ticker: ticker, Status: StatusNoData}
}

func FetchFailedSnapshot(companyName, ticker string) Snapshot {
	return Snapshot{CompanyName: companyName, Ticker: ticker, Status: StatusFetchFailed}
}
