package ad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanSync(t *testing.T) {
	current := []string{"CN=alice,OU=Staff,DC=corp,DC=local", "CN=bob,OU=Staff,DC=corp,DC=local"}

	tests := []struct {
		name           string
		desired        []string
		unresolved     int
		wantAdd        []string
		wantRemove     []string
		wantSuppressed []string
	}{
		{
			name:       "clean diff applies removals",
			desired:    []string{"CN=alice,OU=Staff,DC=corp,DC=local", "CN=carol,OU=Staff,DC=corp,DC=local"},
			wantAdd:    []string{"CN=carol,OU=Staff,DC=corp,DC=local"},
			wantRemove: []string{"CN=bob,OU=Staff,DC=corp,DC=local"},
		},
		{
			name:           "unresolved account suppresses the removal leg",
			desired:        []string{"CN=alice,OU=Staff,DC=corp,DC=local"},
			unresolved:     1,
			wantSuppressed: []string{"CN=bob,OU=Staff,DC=corp,DC=local"},
		},
		{
			name:       "unresolved account still allows adds",
			desired:    []string{"CN=alice,OU=Staff,DC=corp,DC=local", "CN=bob,OU=Staff,DC=corp,DC=local", "CN=carol,OU=Staff,DC=corp,DC=local"},
			unresolved: 2,
			wantAdd:    []string{"CN=carol,OU=Staff,DC=corp,DC=local"},
		},
		{
			name:    "already in sync",
			desired: current,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toAdd, toRemove, suppressed := PlanSync(current, tt.desired, tt.unresolved)
			assert.Equal(t, tt.wantAdd, toAdd)
			assert.Equal(t, tt.wantRemove, toRemove)
			assert.Equal(t, tt.wantSuppressed, suppressed)
		})
	}
}
