package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testNetworkDelay     = 20 * time.Millisecond
	testUnavailableDelay = 60 * time.Millisecond
)

// flakyTransport fails the first n round trips with a transport error.
type flakyTransport struct {
	failures int32
	calls    atomic.Int32
	next     http.RoundTripper
}

func (f *flakyTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if n := f.calls.Add(1); n <= f.failures {
		return nil, errors.New("dial tcp: connection refused")
	}
	return f.next.RoundTrip(r)
}

func newTestClient(baseURL string, rt http.RoundTripper) *Client {
	return New(Config{
		BaseURL:               baseURL,
		Timeout:               2 * time.Second,
		NetworkRetryDelay:     testNetworkDelay,
		UnavailableRetryDelay: testUnavailableDelay,
		Transport:             rt,
	})
}

func TestClient_RetryPolicy(t *testing.T) {
	t.Run("503 is retried once after the longer delay", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = io.WriteString(w, `{"data":{"id":1,"nome":"Ana"}}`)
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, nil)
		start := time.Now()
		resp, err := c.Get(context.Background(), "/clientes/1")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), testUnavailableDelay)
		assert.Equal(t, int32(2), calls.Load())
		assert.Equal(t, ShapeEnveloped, resp.Shape)
		assert.JSONEq(t, `{"id":1,"nome":"Ana"}`, string(resp.Payload))
	})

	t.Run("second 503 is not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, `{"error":"Servidor em manutenção"}`)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL, nil).Get(context.Background(), "/ordens")
		require.Error(t, err)
		assert.Equal(t, int32(2), calls.Load())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
		assert.Equal(t, "Servidor em manutenção", apiErr.Message)
	})

	t.Run("network failure is retried once", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[{"id":1}]`)
		}))
		defer srv.Close()

		rt := &flakyTransport{failures: 1, next: http.DefaultTransport}
		start := time.Now()
		resp, err := newTestClient(srv.URL, rt).Get(context.Background(), "/produtos")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), testNetworkDelay)
		assert.Equal(t, int32(2), rt.calls.Load())
		assert.Equal(t, ShapeRaw, resp.Shape)
	})

	t.Run("second network failure is not retried", func(t *testing.T) {
		rt := &flakyTransport{failures: 10, next: http.DefaultTransport}
		_, err := newTestClient("http://backend.invalid/api", rt).Get(context.Background(), "/clientes")
		require.Error(t, err)
		assert.Equal(t, int32(2), rt.calls.Load())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.Network())
	})

	t.Run("network failure then 503 stops after one retry", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		rt := &flakyTransport{failures: 1, next: http.DefaultTransport}
		_, err := newTestClient(srv.URL, rt).Get(context.Background(), "/backup/status")
		require.Error(t, err)
		assert.Equal(t, int32(2), rt.calls.Load())
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("other statuses propagate without retry", func(t *testing.T) {
		for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError, http.StatusBadGateway} {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(status)
			}))

			_, err := newTestClient(srv.URL, nil).Delete(context.Background(), "/clientes/9")
			srv.Close()

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, status, apiErr.Status)
			assert.Equal(t, int32(1), calls.Load(), "status %d", status)
		}
	})

	t.Run("cancelled context is not retried", func(t *testing.T) {
		rt := &flakyTransport{failures: 10, next: http.DefaultTransport}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newTestClient("http://backend.invalid/api", rt).Get(ctx, "/clientes")
		require.Error(t, err)
		assert.LessOrEqual(t, rt.calls.Load(), int32(1))
	})
}

func TestClient_Headers(t *testing.T) {
	var auth, reqID, query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		reqID = r.Header.Get(requestIDHeader)
		query = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL+"/api/", nil)
	c.SetAuthToken("jwt-token")

	resp, err := c.Get(context.Background(), "/clientes?busca=ana&page=2")
	require.NoError(t, err)
	assert.Equal(t, ShapeEmpty, resp.Shape)
	assert.Equal(t, "Bearer jwt-token", auth)
	assert.NotEmpty(t, reqID)
	assert.Equal(t, "busca=ana&page=2", query)

	c.SetAuthToken("")
	_, err = c.Get(context.Background(), "/clientes")
	require.NoError(t, err)
	assert.Empty(t, auth)
}

func TestClient_UploadReplaysBodyOnRetry(t *testing.T) {
	var calls atomic.Int32
	var filename, content string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			_, _ = io.Copy(io.Discard, r.Body)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fh := r.MultipartForm.File["fotos"][0]
		filename = fh.Filename
		f, _ := fh.Open()
		b, _ := io.ReadAll(f)
		content = string(b)
		_, _ = io.WriteString(w, `{"data":[{"id":"p1"}]}`)
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL, nil).Upload(context.Background(), "/ordens/1/fotos", nil, []FilePart{
		{Field: "fotos", Filename: "tela.png", ContentType: "image/png", Data: []byte("png-bytes")},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "tela.png", filename)
	assert.Equal(t, "png-bytes", content)
	assert.Equal(t, ShapeEnveloped, resp.Shape)
}

func TestClient_Download(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/sql")
		_, _ = io.WriteString(w, `{"data":"not an envelope for downloads"}`)
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL, nil).Download(context.Background(), "/backup/download/b.sql")
	require.NoError(t, err)
	assert.Equal(t, "application/sql", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(string(resp.Payload), `{"data"`))
}
