package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datewheel/internal/config"
)

var published = time.Date(2023, 7, 13, 10, 5, 30, 0, time.UTC)

func serve(s *FeedServer, req *http.Request) *http.Response {
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w.Result()
}

func TestFeed_ServingContent(t *testing.T) {
	srv := NewFeedServer("0")
	expectedICS := []byte("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR")
	srv.Publish(expectedICS, published)
	require.True(t, srv.Published())

	resp := serve(srv, httptest.NewRequest(http.MethodGet, "/", nil))
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeTextCalendar, resp.Header.Get(config.HeaderContentType))
	assert.Equal(t, config.MimeNoSniff, resp.Header.Get(config.HeaderXContentType))
	assert.Contains(t, resp.Header.Get(config.HeaderCacheControl), "no-cache")
	assert.NotEmpty(t, resp.Header.Get(config.HeaderETag))
	assert.Equal(t, "Thu, 13 Jul 2023 10:05:30 GMT", resp.Header.Get(config.HeaderLastModified))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, expectedICS, body)
}

func TestFeed_HeadHasNoBody(t *testing.T) {
	srv := NewFeedServer("0")
	srv.Publish([]byte("DATA"), published)

	resp := serve(srv, httptest.NewRequest(http.MethodHead, "/", nil))
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}

func TestFeed_ConditionalRequests(t *testing.T) {
	srv := NewFeedServer("0")
	srv.Publish([]byte("SELECTION_1"), published)

	first := serve(srv, httptest.NewRequest(http.MethodGet, "/", nil))
	etag := first.Header.Get(config.HeaderETag)
	_ = first.Body.Close()
	require.NotEmpty(t, etag)

	tests := []struct {
		name   string
		header string
		value  string
		want   int
	}{
		{"Matching ETag", config.HeaderIfNoneMatch, etag, http.StatusNotModified},
		{"Stale ETag", config.HeaderIfNoneMatch, `"stale"`, http.StatusOK},
		{"Modified since earlier", config.HeaderIfModifiedSince, published.Add(-time.Minute).Format(http.TimeFormat), http.StatusOK},
		{"Not modified since", config.HeaderIfModifiedSince, published.Format(http.TimeFormat), http.StatusNotModified},
		{"Garbage date", config.HeaderIfModifiedSince, "yesterday", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(tt.header, tt.value)
			resp := serve(srv, req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}

	// A new selection invalidates the old ETag.
	srv.Publish([]byte("SELECTION_2"), published.Add(time.Minute))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(config.HeaderIfNoneMatch, etag)
	resp := serve(srv, req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFeed_MethodNotAllowed(t *testing.T) {
	srv := NewFeedServer("0")

	resp := serve(srv, httptest.NewRequest(http.MethodPost, "/", nil))
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, config.AllowedMethods, resp.Header.Get(config.HeaderAllow))
}

func TestFeed_NothingPublished(t *testing.T) {
	srv := NewFeedServer("0")
	assert.False(t, srv.Published())

	resp := serve(srv, httptest.NewRequest(http.MethodGet, "/", nil))
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, config.RetryAfterSeconds, resp.Header.Get(config.HeaderRetryAfter))
}

// TestFeed_ConcurrentPublish runs writers and readers together; run with -race.
func TestFeed_ConcurrentPublish(t *testing.T) {
	srv := NewFeedServer("0")
	var wg sync.WaitGroup
	end := time.Now().Add(300 * time.Millisecond)

	for w := 0; w < 3; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; time.Now().Before(end); i++ {
				srv.Publish([]byte(fmt.Sprintf("SELECTION:%d-%d", id, i)), time.Now())
				time.Sleep(time.Microsecond)
			}
		}(w)
	}

	for r := 0; r < 10; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) {
				resp := serve(srv, httptest.NewRequest(http.MethodGet, "/", nil))
				_ = resp.Body.Close()
				if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
					t.Errorf("unexpected status code: %d", resp.StatusCode)
				}
			}
		}()
	}

	wg.Wait()
}

func TestFeed_StartRequiresPort(t *testing.T) {
	err := NewFeedServer("").Start(context.Background())
	assert.EqualError(t, err, config.ErrPortRequired)
}

// TestFeed_Lifecycle binds a real listener and shuts it down through the context.
func TestFeed_Lifecycle(t *testing.T) {
	const port = "18199"

	srv := NewFeedServer(port)
	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(ctx)
	}()

	url := "http://127.0.0.1:" + port + "/"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return true
	}, 2*time.Second, 50*time.Millisecond, "server failed to listen in time")

	srv.Publish([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), time.Now())

	resp, err := http.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "BEGIN:VCALENDAR")

	cancel()
	select {
	case err := <-errChan:
		assert.NoError(t, err, "graceful shutdown returns nil")
	case <-time.After(5 * time.Second):
		t.Fatal("server shutdown timed out")
	}
}
