package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testToken(ctx context.Context) (string, error) {
	return "test-token", nil
}

func TestGetAllFollowsNextLink(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `{"value":[{"Identity":"c"}]}`)
			return
		}
		fmt.Fprintf(w, `{"value":[{"Identity":"a"},{"Identity":"b"}],"@odata.nextLink":"%s/tenant-id/Mailbox?page=2"}`, server.URL)
	}))
	defer server.Close()

	client := NewClientWithOptions(server.URL, "tenant-id", server.Client(), testToken)

	raw, err := client.GetAll(context.Background(), "/Mailbox", nil)
	require.NoError(t, err)
	require.Len(t, raw, 3)

	var last exoMailbox
	require.NoError(t, json.Unmarshal(raw[2], &last))
	assert.Equal(t, "c", last.Identity)
}

func TestGetAllPropagatesQueryAndErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tenant-id/Mailbox", r.URL.Path)
		assert.Equal(t, "RecipientTypeDetails eq 'SharedMailbox'", r.URL.Query().Get("$filter"))
		http.Error(w, `{"error":"denied"}`, http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClientWithOptions(server.URL, "tenant-id", server.Client(), testToken)

	query := url.Values{}
	query.Set("$filter", "RecipientTypeDetails eq 'SharedMailbox'")

	_, err := client.GetAll(context.Background(), "/Mailbox", query)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestInvokeCmdlet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tenant-id/InvokeCommand", r.URL.Path)

		var req invokeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Set-Mailbox", req.CmdletInput.CmdletName)
		assert.Equal(t, "Shared", req.CmdletInput.Parameters["Type"])

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"value":[{"Identity":"finance"}]}`)
	}))
	defer server.Close()

	client := NewClientWithOptions(server.URL, "tenant-id", server.Client(), testToken)

	raw, err := client.InvokeCmdlet(context.Background(), "Set-Mailbox", map[string]any{
		"Identity": "finance@contoso.com",
		"Type":     "Shared",
	})
	require.NoError(t, err)
	require.Len(t, raw, 1)
}

func TestInvokeCmdletEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClientWithOptions(server.URL, "tenant-id", server.Client(), testToken)

	raw, err := client.InvokeCmdlet(context.Background(), "Set-Mailbox", nil)
	require.NoError(t, err)
	assert.Empty(t, raw)
}
