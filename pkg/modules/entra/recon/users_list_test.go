package recon

import (
	"testing"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
)

func TestEntraReconModules(t *testing.T) {
	tests := []struct {
		id     string
		module *chain.Module
	}{
		{"users-list", EntraUsersList},
		{"guest-report", EntraGuestReport},
		{"inactive-users", EntraInactiveUsers},
		{"license-report", EntraLicenseReport},
		{"group-members", EntraGroupMembers},
	}

	for _, tt := range tests {
		if tt.module == nil {
			t.Fatalf("module %s is nil", tt.id)
		}

		props := tt.module.Metadata().Properties()
		if props["id"] != tt.id {
			t.Errorf("Expected id %q, got %v", tt.id, props["id"])
		}
		if props["platform"] != "entra" {
			t.Errorf("Expected platform 'entra' for %s, got %v", tt.id, props["platform"])
		}
	}
}
