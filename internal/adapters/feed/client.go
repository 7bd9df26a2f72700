package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	klinesPath = "/api/v3/klines"
	tickerPath = "/api/v3/ticker/price"
)

// Client fetches close prices from the market-data endpoint. One fetch attempt
// per call; no retry or backoff.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient constructs a feed client. An empty baseURL falls back to the
// public Binance API; a non-positive timeout falls back to 10s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.binance.com"
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// LatestClose returns the close of the most recent 1-minute candle for symbol.
// The feed answers with an OHLC array per candle; the close is the string
// decimal at index 4. Symbols with no candle data fall through to the spot
// ticker endpoint before giving up.
func (c *Client) LatestClose(ctx context.Context, symbol string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s%s?symbol=%s&interval=1m&limit=1", c.baseURL, klinesPath, symbol)
	payload, err := c.get(ctx, endpoint, symbol)
	if err != nil {
		return decimal.Decimal{}, err
	}

	var candles [][]json.RawMessage
	if err := json.Unmarshal(payload, &candles); err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse feed response: %w", err)
	}
	if len(candles) == 0 {
		return c.SpotPrice(ctx, symbol)
	}
	if len(candles[0]) < 5 {
		return decimal.Decimal{}, fmt.Errorf("feed returned short candle for %s", symbol)
	}

	var closeStr string
	if err := json.Unmarshal(candles[0][4], &closeStr); err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse close field: %w", err)
	}

	price, err := decimal.NewFromString(closeStr)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse close price %q: %w", closeStr, err)
	}
	return price, nil
}

// SpotPrice returns the current ticker price for symbol.
func (c *Client) SpotPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s%s?symbol=%s", c.baseURL, tickerPath, symbol)
	payload, err := c.get(ctx, endpoint, symbol)
	if err != nil {
		return decimal.Decimal{}, err
	}

	var ticker struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}
	if err := json.Unmarshal(payload, &ticker); err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse ticker response: %w", err)
	}

	price, err := decimal.NewFromString(ticker.Price)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse ticker price %q: %w", ticker.Price, err)
	}
	return price, nil
}

func (c *Client) get(ctx context.Context, endpoint, symbol string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d for %s", resp.StatusCode, symbol)
	}
	return payload, nil
}
