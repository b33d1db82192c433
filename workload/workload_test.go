package workload

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("fibonacci", Config{Size: 1024})
	assert.ErrorContains(t, err, "unknown workload")
}

func TestLookupBuiltins(t *testing.T) {
	for _, name := range []string{"sha256", "memcpy", "sort", "json"} {
		wl, err := Lookup(name, Config{Size: 4096})
		require.NoError(t, err, name)
		assert.Equal(t, name, wl.Name)
		assert.NotZero(t, wl.Bytes, name)
		// Every workload must be invokable immediately.
		wl.Fn()
	}
}

func TestSHA256ReportsConfiguredSize(t *testing.T) {
	wl, err := Lookup("sha256", Config{Size: 64 * 1024})
	require.NoError(t, err)
	assert.Equal(t, uint64(64*1024), wl.Bytes)
}

func TestSortHandlesTinySize(t *testing.T) {
	wl, err := Lookup("sort", Config{Size: 1})
	require.NoError(t, err)
	// Clamped to two elements.
	assert.Equal(t, uint64(16), wl.Bytes)
	wl.Fn()
}

func TestHTTPRequiresURL(t *testing.T) {
	_, err := Lookup("http", Config{})
	assert.ErrorContains(t, err, "requires a target URL")
}

func TestHTTPFetchesTarget(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	wl, err := Lookup("http", Config{URL: srv.URL})
	require.NoError(t, err)

	wl.Fn()
	wl.Fn()
	assert.Equal(t, 2, hits)
}
