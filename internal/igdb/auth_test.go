package igdb

import (
	"context"
	"net/http"
	"testing"

	"github.com/lepinkainen/gamecrawl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAppToken(t *testing.T) {
	server := testutil.NewIPv4TestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "abc", r.URL.Query().Get("client_id"))
		assert.Equal(t, "shh", r.URL.Query().Get("client_secret"))
		assert.Equal(t, "client_credentials", r.URL.Query().Get("grant_type"))
		_, _ = w.Write([]byte(`{"access_token":"tok123","expires_in":5000000,"token_type":"bearer"}`))
	}))

	token, err := FetchAppToken(context.Background(), server.Client(), server.URL, "abc", "shh")
	require.NoError(t, err)
	assert.Equal(t, "tok123", token.AccessToken)
	assert.Equal(t, int64(5000000), token.ExpiresIn)
}

func TestFetchAppToken_Errors(t *testing.T) {
	_, err := FetchAppToken(context.Background(), nil, "", "abc", "")
	require.Error(t, err)

	server := testutil.NewIPv4TestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid client secret"}`))
	}))

	_, err = FetchAppToken(context.Background(), server.Client(), server.URL, "abc", "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid client secret")
}
