package trending

import (
	"context"
	"errors"
	"testing"
)

type fakeProvider struct {
	items []Item
	hint  VideoHint
	err   error
}

func (f fakeProvider) FetchTrending(ctx context.Context) ([]Item, error) {
	return f.items, f.err
}

func (f fakeProvider) DetectVideo(ctx context.Context, title, url string) (VideoHint, error) {
	return f.hint, f.err
}

func TestFetchOrEmpty(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
		want     int
	}{
		{"items pass through", fakeProvider{items: []Item{{Title: "a"}, {Title: "b"}}}, 2},
		{"network failure is empty", fakeProvider{err: newError(ErrKindNetwork, "down", errors.New("refused"))}, 0},
		{"disabled is empty", fakeProvider{err: newError(ErrKindConfig, "disabled", ErrNoAPIKey)}, 0},
		{"nil list is empty", fakeProvider{}, 0},
		{"nil provider is empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FetchOrEmpty(context.Background(), tt.provider)
			if got == nil {
				t.Fatal("FetchOrEmpty() = nil, want non-nil slice")
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestDetectOrNone(t *testing.T) {
	hint := VideoHint{HasVideo: true, VideoType: "DASH"}

	if got := DetectOrNone(context.Background(), fakeProvider{hint: hint}, "t", "u"); got != hint {
		t.Errorf("DetectOrNone() = %+v, want %+v", got, hint)
	}
	failing := fakeProvider{hint: hint, err: newError(ErrKindHTTP, "boom", nil)}
	if got := DetectOrNone(context.Background(), failing, "t", "u"); got.HasVideo {
		t.Errorf("DetectOrNone() on failure = %+v, want HasVideo false", got)
	}
}

func TestErrorFormatting(t *testing.T) {
	e := &Error{Kind: ErrKindHTTP, Message: "generateContent failed", StatusCode: 500, Err: errors.New("internal")}
	want := "HTTP Error: generateContent failed (status 500): internal"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
	if !errors.Is(e, e.Err) {
		t.Error("Unwrap does not expose the cause")
	}
}
