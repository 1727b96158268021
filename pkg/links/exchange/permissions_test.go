package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeepPermission(t *testing.T) {
	tests := []struct {
		name             string
		user             string
		right            string
		inherited        bool
		trustee          string
		includeInherited bool
		keep             bool
	}{
		{
			name:  "explicit full access",
			user:  "alice@contoso.com",
			right: "FullAccess",
			keep:  true,
		},
		{
			name:  "nt authority self dropped",
			user:  "NT AUTHORITY\\SELF",
			right: "FullAccess",
			keep:  false,
		},
		{
			name:  "orphaned sid dropped",
			user:  "S-1-5-21-1004336348-1177238915-682003330-512",
			right: "FullAccess",
			keep:  false,
		},
		{
			name:      "inherited dropped by default",
			user:      "alice@contoso.com",
			right:     "FullAccess",
			inherited: true,
			keep:      false,
		},
		{
			name:             "inherited kept when requested",
			user:             "alice@contoso.com",
			right:            "FullAccess",
			inherited:        true,
			includeInherited: true,
			keep:             true,
		},
		{
			name:    "trustee filter matches case insensitively",
			user:    "Alice@Contoso.com",
			right:   "SendAs",
			trustee: "alice@contoso.com",
			keep:    true,
		},
		{
			name:    "trustee filter excludes others",
			user:    "bob@contoso.com",
			right:   "SendAs",
			trustee: "alice@contoso.com",
			keep:    false,
		},
		{
			name:  "empty right dropped",
			user:  "alice@contoso.com",
			right: "",
			keep:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeepPermission(tt.user, tt.right, tt.inherited, tt.trustee, tt.includeInherited)
			assert.Equal(t, tt.keep, got)
		})
	}
}
