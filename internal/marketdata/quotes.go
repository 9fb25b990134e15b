package marketdata

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/mgrube/employerstocks/internal/models"
)

const quoteSummaryBaseURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary"

// Quotes fetches market-data snapshots for resolved tickers.
type Quotes struct {
	client  jsonGetter
	baseURL string
}

func NewQuotes(client jsonGetter) *Quotes {
	return &Quotes{client: client, baseURL: quoteSummaryBaseURL}
}

// yahooValue is Yahoo's {raw, fmt} number wrapper; only raw matters here.
type yahooValue struct {
	Raw *float64 `json:"raw"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price *struct {
				ShortName          string      `json:"shortName"`
				RegularMarketPrice *yahooValue `json:"regularMarketPrice"`
				MarketCap          *yahooValue `json:"marketCap"`
			} `json:"price"`
			SummaryProfile *struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"summaryProfile"`
			SummaryDetail *struct {
				TrailingPE *yahooValue `json:"trailingPE"`
			} `json:"summaryDetail"`
		} `json:"result"`
	} `json:"quoteSummary"`
}

// Fetch returns a snapshot for the ticker. Fields the upstream omits stay
// absent; an empty result set is NO_DATA; exhausted retries degrade to a
// FETCH_FAILED snapshot instead of an error, so one bad ticker never stops
// the run.
func (q *Quotes) Fetch(ctx context.Context, companyName, ticker string) models.Snapshot {
	fetchURL := fmt.Sprintf("%s/%s?modules=price,summaryProfile,summaryDetail", q.baseURL, url.PathEscape(ticker))

	var resp quoteSummaryResponse
	if err := q.client.GetJSON(ctx, fetchURL, &resp); err != nil {
		log.Printf("Market data fetch for %s failed: %v", ticker, err)
		return models.FetchFailedSnapshot(companyName, ticker)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return models.NoDataSnapshot(companyName, ticker)
	}

	result := resp.QuoteSummary.Result[0]
	snap := models.Snapshot{CompanyName: companyName, Ticker: ticker, Status: models.StatusOK}
	if result.Price != nil {
		snap.ShortName = result.Price.ShortName
		snap.Price = decimalFrom(result.Price.RegularMarketPrice)
		snap.MarketCap = decimalFrom(result.Price.MarketCap)
	}
	if result.SummaryProfile != nil {
		snap.Sector = result.SummaryProfile.Sector
		snap.Industry = result.SummaryProfile.Industry
	}
	if result.SummaryDetail != nil {
		snap.PERatio = decimalFrom(result.SummaryDetail.TrailingPE)
	}
	return snap
}

func decimalFrom(v *yahooValue) *decimal.Decimal {
	if v == nil || v.Raw == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v.Raw)
	return &d
}
