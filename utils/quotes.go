package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dylan-dingjan/bebetterbot/logger"
	"go.uber.org/zap"
)

// FallbackQuote is used whenever the quote API is unreachable or returns
// something unusable.
const FallbackQuote = "Keep pushing forward! 💪"

var quoteClient = &http.Client{Timeout: 10 * time.Second}

type quoteResponse struct {
	Quote  string `json:"q"`
	Author string `json:"a"`
}

// FetchQuote fetches a random motivational quote from the configured API.
// Any failure falls back to a fixed string; a quote is always returned.
func FetchQuote(ctx context.Context, apiURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return FallbackQuote
	}

	resp, err := quoteClient.Do(req)
	if err != nil {
		logger.Log.Warn("quote fetch failed", zap.Error(err))
		return FallbackQuote
	}
	defer resp.Body.Close()

	var quotes []quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil || len(quotes) == 0 {
		logger.Log.Warn("quote response unusable", zap.Error(err))
		return FallbackQuote
	}
	return quotes[0].Quote + " - " + quotes[0].Author
}
