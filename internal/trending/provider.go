package trending

import (
	"context"

	"github.com/muurk/odintv/internal/logging"
	"go.uber.org/zap"
)

// Item is one trending topic
type Item struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// VideoHint is the smart-detection verdict for a site
type VideoHint struct {
	HasVideo        bool    `json:"hasVideo"`
	VideoType       string  `json:"videoType,omitempty"` // HLS, MP4 or DASH
	Confidence      float64 `json:"confidence,omitempty"`
	OptimizationTip string  `json:"optimizationTip,omitempty"`
}

// Provider supplies trending topics and video hints
type Provider interface {
	FetchTrending(ctx context.Context) ([]Item, error)
	DetectVideo(ctx context.Context, title, url string) (VideoHint, error)
}

// FetchOrEmpty returns the provider's topics, or an empty list on any failure
func FetchOrEmpty(ctx context.Context, p Provider) []Item {
	if p == nil {
		return []Item{}
	}
	items, err := p.FetchTrending(ctx)
	if err != nil {
		if IsKind(err, ErrKindConfig) {
			logging.Debug("Trending disabled", zap.Error(err))
		} else {
			logging.Warn("Trending fetch failed", zap.Error(err))
		}
		return []Item{}
	}
	if items == nil {
		return []Item{}
	}
	return items
}

// DetectOrNone returns the provider's hint, or {HasVideo: false} on any failure
func DetectOrNone(ctx context.Context, p Provider, title, url string) VideoHint {
	if p == nil {
		return VideoHint{}
	}
	hint, err := p.DetectVideo(ctx, title, url)
	if err != nil {
		if !IsKind(err, ErrKindConfig) {
			logging.Warn("Video detection failed", zap.String("site", title), zap.Error(err))
		}
		return VideoHint{}
	}
	return hint
}
