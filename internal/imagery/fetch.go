// Package imagery fetches card images and renders them for the terminal.
//
// A URL that fails to load is replaced by the card's placeholder URL. If
// that fails too, a text placeholder frame is used. Failures are logged and
// never returned to the caller.
package imagery

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/singleflight"
)

const (
	maxImageBytes = 20 << 20
	// maxImageSide bounds decoded dimensions; a small file can still
	// declare a huge canvas.
	maxImageSide = 4096
)

// Frame is a rendered image.
type Frame struct {
	// URL is the image that was asked for.
	URL string
	// Source is the URL actually rendered; empty for a text placeholder.
	Source string
	// Fallback is set when URL could not be shown.
	Fallback bool
	Text     string
}

// Options configures a Fetcher.
type Options struct {
	Client  *http.Client
	Timeout time.Duration
	// Offline skips the network and renders text placeholders.
	Offline bool
	Logger  *zap.Logger
	// OnFallback is called once per URL that failed to load.
	OnFallback func(url string)
}

// Fetcher loads and renders images, caching frames by URL and size.
// It is safe for concurrent use.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	offline    bool
	logger     *zap.Logger
	onFallback func(string)

	group singleflight.Group
	mu    sync.Mutex
	cache map[string]Frame
}

// NewFetcher creates a fetcher.
func NewFetcher(opts Options) *Fetcher {
	f := &Fetcher{
		client:     opts.Client,
		timeout:    opts.Timeout,
		offline:    opts.Offline,
		logger:     opts.Logger,
		onFallback: opts.OnFallback,
		cache:      make(map[string]Frame),
	}
	if f.client == nil {
		f.client = http.DefaultClient
	}
	if f.timeout <= 0 {
		f.timeout = 10 * time.Second
	}
	if f.logger == nil {
		f.logger = zap.NewNop()
	}
	return f
}

// Render returns url rendered into width×height cells, substituting
// placeholder when url fails. Concurrent calls for the same frame share
// one download.
func (f *Fetcher) Render(ctx context.Context, url, placeholder string, width, height int) Frame {
	key := fmt.Sprintf("%s|%s|%dx%d", url, placeholder, width, height)

	f.mu.Lock()
	frame, ok := f.cache[key]
	f.mu.Unlock()
	if ok {
		return frame
	}

	v, _, _ := f.group.Do(key, func() (any, error) {
		frame := f.render(ctx, url, placeholder, width, height)
		f.mu.Lock()
		f.cache[key] = frame
		f.mu.Unlock()
		return frame, nil
	})
	return v.(Frame)
}

func (f *Fetcher) render(ctx context.Context, url, placeholder string, width, height int) Frame {
	if f.offline {
		return Frame{URL: url, Text: TextPlaceholder(width, height, "offline")}
	}

	img, err := f.fetch(ctx, url)
	if err == nil {
		return Frame{URL: url, Source: url, Text: HalfBlocks(img, width, height)}
	}
	f.logger.Warn("image failed to load, using placeholder",
		zap.String("url", url),
		zap.Error(err))
	if f.onFallback != nil {
		f.onFallback(url)
	}

	if placeholder != "" && placeholder != url {
		img, perr := f.fetch(ctx, placeholder)
		if perr == nil {
			return Frame{URL: url, Source: placeholder, Fallback: true, Text: HalfBlocks(img, width, height)}
		}
		f.logger.Warn("placeholder failed to load",
			zap.String("url", placeholder),
			zap.Error(perr))
	}
	return Frame{URL: url, Fallback: true, Text: TextPlaceholder(width, height, "image unavailable")}
}

func (f *Fetcher) fetch(ctx context.Context, url string) (image.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	}
	return decode(url, io.LimitReader(resp.Body, maxImageBytes))
}

// decode checks the image header before decoding the pixels.
func decode(url string, r io.Reader) (image.Image, error) {
	br := bufio.NewReaderSize(r, 64<<10)
	// Headers fit well inside the buffer; a short peek at EOF is fine.
	head, _ := br.Peek(64 << 10)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(head))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	if cfg.Width > maxImageSide || cfg.Height > maxImageSide {
		return nil, fmt.Errorf("decode %s: %dx%d exceeds %dx%d", url, cfg.Width, cfg.Height, maxImageSide, maxImageSide)
	}
	img, _, err := image.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return img, nil
}
