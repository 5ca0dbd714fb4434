package imagery

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 5), G: uint8(y * 5), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// oversizedPNG returns a tiny PNG whose header declares a w×h canvas.
func oversizedPNG(t *testing.T, w, h uint32) []byte {
	t.Helper()
	b := pngBytes(t, 2, 2)
	// Signature (8) + IHDR length (4) + type (4), then width and height.
	binary.BigEndian.PutUint32(b[16:20], w)
	binary.BigEndian.PutUint32(b[20:24], h)
	binary.BigEndian.PutUint32(b[29:33], crc32.ChecksumIEEE(b[12:29]))
	return b
}

// newImageServer serves a PNG at /ok.png and /placeholder.png, a PNG
// declaring a 12000×12000 canvas at /huge.png and 404s everything else.
// hits counts requests per path.
func newImageServer(t *testing.T) (*httptest.Server, *sync.Map) {
	t.Helper()
	body := pngBytes(t, 40, 30)
	huge := oversizedPNG(t, 12000, 12000)
	hits := &sync.Map{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n, _ := hits.LoadOrStore(r.URL.Path, new(atomic.Int32))
		n.(*atomic.Int32).Add(1)
		switch r.URL.Path {
		case "/ok.png", "/placeholder.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(body)
		case "/huge.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(huge)
		case "/garbage.png":
			_, _ = w.Write([]byte("not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, hits
}

func hitCount(hits *sync.Map, path string) int32 {
	n, ok := hits.Load(path)
	if !ok {
		return 0
	}
	return n.(*atomic.Int32).Load()
}

func assertFits(t *testing.T, text string, width, height int) {
	t.Helper()
	lines := strings.Split(text, "\n")
	assert.LessOrEqual(t, len(lines), height)
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), width)
	}
}

func TestFetcher_RendersImage(t *testing.T) {
	srv, _ := newImageServer(t)
	f := NewFetcher(Options{Client: srv.Client()})

	frame := f.Render(context.Background(), srv.URL+"/ok.png", srv.URL+"/placeholder.png", 20, 10)
	assert.False(t, frame.Fallback)
	assert.Equal(t, srv.URL+"/ok.png", frame.Source)
	assert.Contains(t, frame.Text, halfBlock)
	assertFits(t, frame.Text, 20, 10)
}

func TestFetcher_FallsBackToPlaceholder(t *testing.T) {
	srv, hits := newImageServer(t)
	var failed []string
	f := NewFetcher(Options{
		Client:     srv.Client(),
		OnFallback: func(url string) { failed = append(failed, url) },
	})

	for _, path := range []string{"/missing.png", "/garbage.png"} {
		frame := f.Render(context.Background(), srv.URL+path, srv.URL+"/placeholder.png", 20, 10)
		assert.True(t, frame.Fallback, path)
		assert.Equal(t, srv.URL+"/placeholder.png", frame.Source, path)
		assert.Contains(t, frame.Text, halfBlock, path)
	}
	assert.Equal(t, []string{srv.URL + "/missing.png", srv.URL + "/garbage.png"}, failed)
	assert.Equal(t, int32(1), hitCount(hits, "/missing.png"), "no retry of the failed url")
}

func TestFetcher_RejectsOversizedImage(t *testing.T) {
	srv, _ := newImageServer(t)
	var failed []string
	f := NewFetcher(Options{
		Client:     srv.Client(),
		OnFallback: func(url string) { failed = append(failed, url) },
	})

	frame := f.Render(context.Background(), srv.URL+"/huge.png", srv.URL+"/placeholder.png", 20, 10)
	assert.True(t, frame.Fallback)
	assert.Equal(t, srv.URL+"/placeholder.png", frame.Source)
	assert.Equal(t, []string{srv.URL + "/huge.png"}, failed)
}

func TestDecode_ChecksDimensions(t *testing.T) {
	_, err := decode("huge", bytes.NewReader(oversizedPNG(t, 12000, 10)))
	assert.ErrorContains(t, err, "12000x10 exceeds")

	img, err := decode("edge", bytes.NewReader(pngBytes(t, 3, 2)))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
}

func TestFetcher_PlaceholderAlsoFails(t *testing.T) {
	srv, _ := newImageServer(t)
	f := NewFetcher(Options{Client: srv.Client()})

	frame := f.Render(context.Background(), srv.URL+"/missing.png", srv.URL+"/also-missing.png", 30, 8)
	assert.True(t, frame.Fallback)
	assert.Empty(t, frame.Source)
	assert.Contains(t, frame.Text, "image unavailable")
	assert.Equal(t, 30, lipgloss.Width(frame.Text))
	assert.Equal(t, 8, lipgloss.Height(frame.Text))
}

func TestFetcher_CachesFrames(t *testing.T) {
	srv, hits := newImageServer(t)
	f := NewFetcher(Options{Client: srv.Client()})
	url := srv.URL + "/ok.png"

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Render(context.Background(), url, "", 20, 10)
		}()
	}
	wg.Wait()
	f.Render(context.Background(), url, "", 20, 10)
	assert.LessOrEqual(t, hitCount(hits, "/ok.png"), int32(8))

	before := hitCount(hits, "/ok.png")
	f.Render(context.Background(), url, "", 20, 10)
	assert.Equal(t, before, hitCount(hits, "/ok.png"), "cached frame is reused")

	f.Render(context.Background(), url, "", 10, 5)
	assert.Equal(t, before+1, hitCount(hits, "/ok.png"), "new size renders again")
}

func TestFetcher_Offline(t *testing.T) {
	srv, hits := newImageServer(t)
	f := NewFetcher(Options{Client: srv.Client(), Offline: true})

	frame := f.Render(context.Background(), srv.URL+"/ok.png", "", 20, 6)
	assert.False(t, frame.Fallback)
	assert.Contains(t, frame.Text, "offline")
	assert.Equal(t, int32(0), hitCount(hits, "/ok.png"))
}

func TestHalfBlocks_KeepsAspect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 10))
	out := HalfBlocks(img, 50, 20)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3, "100x10 into 50 cols scales to 50x5 pixels, rounded to 6")
	assert.Equal(t, 50, lipgloss.Width(lines[0]))

	assert.Empty(t, HalfBlocks(nil, 10, 10))
	assert.Empty(t, HalfBlocks(img, 0, 10))
}

func TestTextPlaceholder_Small(t *testing.T) {
	assert.Equal(t, "x", TextPlaceholder(2, 2, "x"))
}
