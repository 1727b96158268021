package sharepoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsExternalPrincipal(t *testing.T) {
	tests := []struct {
		name  string
		login string
		want  bool
	}{
		{"invited guest", "i:0#.f|membership|jane_fabrikam.com#ext#@contoso.onmicrosoft.com", true},
		{"uppercase ext claim", "i:0#.f|membership|jane_fabrikam.com#EXT#@contoso.onmicrosoft.com", true},
		{"ad-hoc guest", "urn:spo:guest#jane@fabrikam.com", true},
		{"url-encoded ext claim", "i:0%23.f|membership|jane_fabrikam.com%23ext%23@contoso.onmicrosoft.com", true},
		{"internal member", "i:0#.f|membership|alice@contoso.com", false},
		{"everyone except external", "c:0-.f|rolemanager|spo-grid-all-users/tenant-id", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExternalPrincipal(tt.login))
		})
	}
}

func TestIsOwner(t *testing.T) {
	assert.True(t, IsOwner(true, nil), "site admins always own")
	assert.True(t, IsOwner(false, []string{"Finance Owners"}))
	assert.True(t, IsOwner(false, []string{"Finance Members", "Finance owners"}))
	assert.False(t, IsOwner(false, []string{"Finance Members", "Finance Visitors"}))
	assert.False(t, IsOwner(false, nil))
}

func TestIsOneDriveSite(t *testing.T) {
	assert.True(t, IsOneDriveSite("https://contoso-my.sharepoint.com/personal/alice_contoso_com"))
	assert.True(t, IsOneDriveSite("https://contoso.sharepoint.com/personal/alice_contoso_com"))
	assert.False(t, IsOneDriveSite("https://contoso.sharepoint.com/sites/finance"))
}

func TestMatchesTemplate(t *testing.T) {
	assert.True(t, MatchesTemplate("STS", ""), "empty filter matches everything")
	assert.True(t, MatchesTemplate("GROUP", "group"))
	assert.False(t, MatchesTemplate("STS", "GROUP"))
}

func TestParseSiteUsers(t *testing.T) {
	data := []byte(`[
		{"Id":5,"Title":"Alice","LoginName":"i:0#.f|membership|alice@contoso.com","Email":"alice@contoso.com","IsSiteAdmin":true,"Groups":[{"Title":"Finance Owners"}]},
		{"Id":9,"Title":"Jane (Guest)","LoginName":"i:0#.f|membership|jane_fabrikam.com#ext#@contoso.onmicrosoft.com","Email":"jane@fabrikam.com","IsSiteAdmin":false,"Groups":[]}
	]`)

	users, err := parseSiteUsers(data)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "Alice", users[0].Title)
	assert.True(t, users[0].IsSiteAdmin)
	assert.Equal(t, []string{"Finance Owners"}, users[0].groupTitles())

	assert.True(t, IsExternalPrincipal(users[1].LoginName))
	assert.Empty(t, users[1].groupTitles())
}
