package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameStringSlice(t *testing.T) {
	assert.True(t, SameStringSlice([]string{"a", "b"}, []string{"b", "a"}))
	assert.False(t, SameStringSlice([]string{"a"}, []string{"a", "a"}))
	assert.False(t, SameStringSlice([]string{"a"}, []string{"b"}))
}

func TestEscapeODataString(t *testing.T) {
	assert.Equal(t, "O''Brien''s Team", EscapeODataString("O'Brien's Team"))
	assert.Equal(t, "finance@contoso.com", EscapeODataString("finance@contoso.com"))
	assert.Equal(t, "", EscapeODataString(""))
}

func TestDiffFold(t *testing.T) {
	tests := []struct {
		name       string
		current    []string
		desired    []string
		wantAdd    []string
		wantRemove []string
	}{
		{
			name:       "already in sync",
			current:    []string{"alice@contoso.com"},
			desired:    []string{"Alice@Contoso.com"},
			wantAdd:    nil,
			wantRemove: nil,
		},
		{
			name:       "add and remove",
			current:    []string{"alice@contoso.com", "bob@contoso.com"},
			desired:    []string{"alice@contoso.com", "carol@contoso.com"},
			wantAdd:    []string{"carol@contoso.com"},
			wantRemove: []string{"bob@contoso.com"},
		},
		{
			name:       "empty desired removes everyone",
			current:    []string{"b@x.com", "a@x.com"},
			desired:    nil,
			wantAdd:    nil,
			wantRemove: []string{"a@x.com", "b@x.com"},
		},
		{
			name:       "empty current adds everyone sorted",
			current:    nil,
			desired:    []string{"b@x.com", "a@x.com"},
			wantAdd:    []string{"a@x.com", "b@x.com"},
			wantRemove: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toAdd, toRemove := DiffFold(tt.current, tt.desired)
			assert.Equal(t, tt.wantAdd, toAdd)
			assert.Equal(t, tt.wantRemove, toRemove)
		})
	}
}
