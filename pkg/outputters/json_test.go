package outputters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/castellanops/cumulus/pkg/links/fsacl"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONOutputterWritesArray(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0o600))

	outfile := filepath.Join(t.TempDir(), "acl.json")

	c := chain.NewChain(
		fsacl.NewAclWalkLink(),
	).WithOutputters(
		NewJSONOutputter(),
	).WithConfigs(
		cfg.WithArg("root", root),
		cfg.WithArg("jsonoutfile", outfile),
	)

	c.Send("run")
	c.Close()
	c.Wait()
	require.NoError(t, c.Error())

	data, err := os.ReadFile(outfile)
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(data, &entries))

	// root dir and one file
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Contains(t, e, "Path")
		assert.Contains(t, e, "Mode")
	}
}
