// Package feed fetches daily settlement bars from an HTTP bar provider
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/curve-screener/pkg/curve"
)

// Client retrieves daily close histories over HTTP. The provider exposes
// GET {base}/daily?symbol=SYM&days=N returning a JSON array of
// {"date": "YYYY-MM-DD", "close": 111.5} objects in ascending date order.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a feed client for the given provider base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// wireBar is the provider's JSON row. Dates are calendar days without a
// timezone, parsed as UTC midnight.
type wireBar struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// FetchDaily retrieves the trailing daily bars for one symbol.
func (c *Client) FetchDaily(ctx context.Context, symbol string, days int) ([]curve.PriceBar, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("days", strconv.Itoa(days))
	endpoint := fmt.Sprintf("%s/daily?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request for %s: %w", symbol, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request for %s failed: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed returned %d for %s: %s", resp.StatusCode, symbol, strings.TrimSpace(string(body)))
	}

	var rows []wireBar
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode feed response for %s: %w", symbol, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("feed returned no bars for %s", symbol)
	}

	bars := make([]curve.PriceBar, 0, len(rows))
	for _, row := range rows {
		d, err := time.ParseInLocation("2006-01-02", row.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("feed returned bad date %q for %s: %w", row.Date, symbol, err)
		}
		bars = append(bars, curve.PriceBar{Date: d, Close: row.Close})
	}
	return bars, nil
}

// FetchPair retrieves both legs of the spread. Either leg failing fails the
// whole fetch; the engine cannot evaluate a one-legged snapshot.
func (c *Client) FetchPair(ctx context.Context, symbolA, symbolB string, days int) (barsA, barsB []curve.PriceBar, err error) {
	barsA, err = c.FetchDaily(ctx, symbolA, days)
	if err != nil {
		return nil, nil, err
	}
	barsB, err = c.FetchDaily(ctx, symbolB, days)
	if err != nil {
		return nil, nil, err
	}
	return barsA, barsB, nil
}
