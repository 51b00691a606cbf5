package restclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost(t *testing.T) {
	var gotAuth, gotExtra string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotExtra = r.Header.Get("X-Extra")

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body["prompt"])

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c := New(ts.URL, map[string]string{"Authorization": "Bearer test"})
	resp, status, err := c.Post(context.Background(), "/", map[string]string{"prompt": "hello"}, map[string]string{"X-Extra": "1"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"ok":true}`, string(resp))
	assert.Equal(t, "Bearer test", gotAuth)
	assert.Equal(t, "1", gotExtra)
}

func TestPostMarshalError(t *testing.T) {
	c := New("http://localhost", nil)
	_, _, err := c.Post(context.Background(), "/", func() {}, nil)
	assert.Error(t, err)
}

func TestServerClosed(t *testing.T) {
	ts := httptest.NewServer(nil)
	ts.Close()

	c := New(ts.URL, nil)
	_, status, err := c.Post(context.Background(), "/", map[string]string{}, nil)
	assert.Error(t, err)
	assert.Zero(t, status)
}
