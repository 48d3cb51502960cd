package venueui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRequesterSendsBareDelete(t *testing.T) {
	var (
		mu                        sync.Mutex
		method, path, contentType string
		bodyLen                   int64
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		method, path = r.Method, r.URL.EscapedPath()
		contentType = r.Header.Get("Content-Type")
		bodyLen = r.ContentLength
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	req := NewHTTPRequester(srv.URL+"/", nil)
	err := req.Delete(context.Background(), DeletePath("abc"))

	assert.NoError(t, err, "status codes are not inspected")
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/venues/abc", path)
	assert.Empty(t, contentType)
	assert.Equal(t, int64(0), bodyLen)
}

func TestHTTPRequesterTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewHTTPRequester(url, nil).Delete(context.Background(), "/venues/1")
	assert.Error(t, err)
}

func TestHTTPNavigatorTracksLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>home</html>"))
	}))
	defer srv.Close()

	nav := NewHTTPNavigator(srv.URL, srv.Client())
	require.NoError(t, nav.Navigate(context.Background(), "/"))

	loc, status := nav.Location()
	assert.Equal(t, "/", loc)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, nav.Visits())
}

func TestClickAgainstServer(t *testing.T) {
	var (
		mu      sync.Mutex
		order   []string
		deletes int32
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		order = append(order, r.Method+" "+r.URL.Path)
		mu.Unlock()
		if r.Method == http.MethodDelete {
			atomic.AddInt32(&deletes, 1)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	nav := NewHTTPNavigator(srv.URL, srv.Client())
	h := Bind([]Element{Attrs{IDAttribute: "v-1"}}, NewHTTPRequester(srv.URL, srv.Client()), nav)

	out := wait(t, h.Controls()[0].Click(context.Background()))
	assert.NoError(t, out.DeleteErr)
	assert.NoError(t, out.NavigateErr)

	assert.Equal(t, int32(1), atomic.LoadInt32(&deletes))
	mu.Lock()
	assert.Equal(t, []string{"DELETE /venues/v-1", "GET /"}, order)
	mu.Unlock()
	loc, _ := nav.Location()
	assert.Equal(t, RedirectLocation, loc)
}

func TestClickNavigatesWhenServerUnreachable(t *testing.T) {
	home := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer home.Close()

	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	nav := NewHTTPNavigator(home.URL, nil)
	h := Bind([]Element{Attrs{IDAttribute: "v-1"}}, NewHTTPRequester(deadURL, nil), nav)

	out := wait(t, h.Controls()[0].Click(context.Background()))
	assert.Error(t, out.DeleteErr)
	assert.NoError(t, out.NavigateErr)
	assert.Equal(t, 1, nav.Visits())
}
