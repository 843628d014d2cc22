package upstream

import (
	"context"
	"net/http"
)

// fetches the dashboard top-card figures
func (c *Client) GetOverview(ctx context.Context, token string) (*Overview, error) {
	var overview Overview
	if err := c.doJSON(ctx, http.MethodGet, "/analytics/overview", token, nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// fetches per-country visit counts
func (c *Client) GetCountryStats(ctx context.Context, token string) ([]CountryStat, error) {
	var stats []CountryStat
	if err := c.doJSON(ctx, http.MethodGet, "/analytics/country", token, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// fetches visit counts for a date range (dates formatted YYYY-MM-DD)
func (c *Client) GetVisitStats(ctx context.Context, token, startDate, endDate string) ([]VisitStat, error) {
	var stats []VisitStat
	path := "/analytics/visit/" + startDate + "/" + endDate
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
