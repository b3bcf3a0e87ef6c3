package linkedin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChunkIDs(t *testing.T) {
	makeIDs := func(n int) []int64 {
		ids := make([]int64, n)
		for i := range ids {
			ids[i] = int64(i + 1)
		}
		return ids
	}

	tests := []struct {
		name      string
		ids       []int64
		size      int
		wantSizes []int
	}{
		{
			name:      "45 ids em lotes de 20 viram 20, 20 e 5",
			ids:       makeIDs(45),
			size:      20,
			wantSizes: []int{20, 20, 5},
		},
		{
			name:      "lote exato não gera resto",
			ids:       makeIDs(40),
			size:      20,
			wantSizes: []int{20, 20},
		},
		{
			name:      "menos ids que o lote vira um lote único",
			ids:       makeIDs(3),
			size:      20,
			wantSizes: []int{3},
		},
		{
			name:      "lista vazia não gera lotes",
			ids:       nil,
			size:      20,
			wantSizes: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches := ChunkIDs(tt.ids, tt.size)

			sizes := make([]int, 0, len(batches))
			total := 0
			for _, b := range batches {
				sizes = append(sizes, len(b))
				total += len(b)
			}

			assert.Equal(t, tt.wantSizes, sizes)
			assert.Equal(t, len(tt.ids), total)
		})
	}
}

func TestChunkIDs_PreservaOrdem(t *testing.T) {
	ids := []int64{10, 20, 30, 40, 50}

	batches := ChunkIDs(ids, 2)

	assert.Equal(t, []int64{10, 20}, batches[0])
	assert.Equal(t, []int64{30, 40}, batches[1])
	assert.Equal(t, []int64{50}, batches[2])
}

func TestDateRangeParam(t *testing.T) {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	param := dateRangeParam(start, end)

	assert.Contains(t, param, "start:(year:2026,month:1,day:5)")
	assert.Contains(t, param, "end:(year:2026,month:3,day:20)")
}

func TestCampaignURNs(t *testing.T) {
	urns := campaignURNs([]int64{123, 456})

	assert.Equal(t, "urn%3Ali%3AsponsoredCampaign%3A123,urn%3Ali%3AsponsoredCampaign%3A456", urns)
}
