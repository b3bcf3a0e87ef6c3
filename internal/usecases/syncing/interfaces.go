package syncing

import (
	"context"
	"time"
)

// Fetcher é a superfície do integrador LinkedIn consumida pelo pipeline
type Fetcher interface {
	FetchAccounts(ctx context.Context) ([]map[string]interface{}, error)
	FetchCampaigns(ctx context.Context, accountID int64, statuses []string) ([]map[string]interface{}, error)
	FetchCreatives(ctx context.Context, accountID int64, campaignIDs []int64) ([]map[string]interface{}, error)
	FetchCampaignMetrics(ctx context.Context, campaignIDs []int64, start, end time.Time, granularity string) ([]map[string]interface{}, error)
	FetchCreativeMetrics(ctx context.Context, campaignIDs []int64, start, end time.Time, granularity string) ([]map[string]interface{}, error)
	FetchDemographics(ctx context.Context, campaignIDs []int64, start, end time.Time) (map[string][]map[string]interface{}, error)
	ResolveSegmentNames(ctx context.Context, urns []string) map[string]string
	CallCount() int64
}
