package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIdentityFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mailboxes.txt")
	content := `# converted in wave 2
UserPrincipalName
alice@contoso.com

bob@contoso.com,Bob,Finance
  carol@contoso.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	identities, err := ReadIdentityFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@contoso.com", "bob@contoso.com", "carol@contoso.com"}, identities)
}

func TestReadIdentityFileMissing(t *testing.T) {
	_, err := ReadIdentityFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
