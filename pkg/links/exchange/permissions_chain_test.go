package exchange

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionAuditContinuesPastFailedMailbox(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(r.URL.Path, "broken"):
			http.Error(w, `{"error":"mailbox unavailable"}`, http.StatusInternalServerError)
		case strings.HasSuffix(r.URL.Path, "/InvokeCommand"):
			fmt.Fprint(w, `{"value":[]}`)
		default:
			fmt.Fprint(w, `{"value":[{"User":"CORP\\helpdesk","AccessRights":["FullAccess"],"IsInherited":false}]}`)
		}
	}))
	defer server.Close()

	link := NewExoMailboxPermissionLink().(*ExoMailboxPermissionLink)
	link.client = NewClientWithOptions(server.URL, "tenant-id", server.Client(), testToken)

	c := chain.NewChain(link)
	c.Send(types.MailboxRecord{DisplayName: "Broken", PrimarySmtpAddress: "broken@contoso.com"})
	c.Send(types.MailboxRecord{DisplayName: "Finance", PrimarySmtpAddress: "finance@contoso.com"})
	c.Close()

	var records []types.MailboxPermissionRecord
	for rec, ok := chain.RecvAs[types.MailboxPermissionRecord](c); ok; rec, ok = chain.RecvAs[types.MailboxPermissionRecord](c) {
		records = append(records, rec)
	}

	c.Wait()
	require.NoError(t, c.Error())

	require.Len(t, records, 2)

	assert.Equal(t, "Broken", records[0].Mailbox)
	assert.Equal(t, types.StatusError, records[0].Status)

	assert.Equal(t, "Finance", records[1].Mailbox)
	assert.Equal(t, `CORP\helpdesk`, records[1].Trustee)
	assert.Equal(t, "FullAccess", records[1].AccessRight)
	assert.Equal(t, types.StatusOK, records[1].Status)
}
