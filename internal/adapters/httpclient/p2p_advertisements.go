package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"p2prates/internal/domain"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const defaultRows = 10

// P2PClient queries the marketplace advertisement search for a fixed asset/fiat pair.
type P2PClient struct {
	http    *http.Client
	baseURL string
	asset   string
	fiat    string
	rows    int
}

type searchRequest struct {
	Asset         string   `json:"asset"`
	Fiat          string   `json:"fiat"`
	MerchantCheck bool     `json:"merchantCheck"`
	Page          int      `json:"page"`
	Rows          int      `json:"rows"`
	PayTypes      []string `json:"payTypes"`
	TradeType     string   `json:"tradeType"`
	TransAmount   string   `json:"transAmount"`
}

type searchResponse struct {
	Code  string       `json:"code"`
	Data  []rawListing `json:"data"`
	Total int          `json:"total"`
}

type rawListing struct {
	Adv struct {
		Price                string `json:"price"`
		TradableQuantity     string `json:"tradableQuantity"`
		MinSingleTransAmount string `json:"minSingleTransAmount"`
		MaxSingleTransAmount string `json:"maxSingleTransAmount"`
	} `json:"adv"`
	Advertiser struct {
		UserNo   string `json:"userNo"`
		NickName string `json:"nickName"`
	} `json:"advertiser"`
	TradeMethodNames []string `json:"tradeMethodNames"`
}

func (c *P2PClient) FetchAdvertisements(ctx context.Context, side domain.TradeSide) ([]domain.Advertisement, error) {
	payload, err := json.Marshal(searchRequest{
		Asset:     c.asset,
		Fiat:      c.fiat,
		Page:      1,
		Rows:      c.rows,
		PayTypes:  []string{},
		TradeType: string(side),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request for side %q: %w", side, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request for side %q: %w", side, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request for side %q: %w", side, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d for side %q: %s", resp.StatusCode, side, resp.Status)
	}

	var body searchResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response for side %q: %w", side, err)
	}

	ads := make([]domain.Advertisement, 0, len(body.Data))
	for i, raw := range body.Data {
		ad, ok := toAdvertisement(raw)
		if !ok {
			logrus.Debugf("Skipping %s listing #%d with unusable price %q", side, i, raw.Adv.Price)
			continue
		}
		ads = append(ads, ad)
	}
	return ads, nil
}

// toAdvertisement drops listings without a positive price, optional bounds default to zero
func toAdvertisement(raw rawListing) (domain.Advertisement, bool) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw.Adv.Price))
	if err != nil || !price.IsPositive() {
		return domain.Advertisement{}, false
	}
	return domain.Advertisement{
		Price:            price,
		TradableQuantity: parseOrZero(raw.Adv.TradableQuantity),
		MinTransAmount:   parseOrZero(raw.Adv.MinSingleTransAmount),
		MaxTransAmount:   parseOrZero(raw.Adv.MaxSingleTransAmount),
		AdvertiserID:     raw.Advertiser.UserNo,
		AdvertiserName:   raw.Advertiser.NickName,
		TradeMethods:     raw.TradeMethodNames,
	}, true
}

func parseOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func NewP2PClient(httpClient *http.Client, baseURL, asset, fiat string, rows int) *P2PClient {
	if rows <= 0 {
		rows = defaultRows
	}
	return &P2PClient{http: httpClient, baseURL: baseURL, asset: asset, fiat: fiat, rows: rows}
}
