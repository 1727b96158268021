package fsacl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritableByOthers(t *testing.T) {
	assert.False(t, WritableByOthers(0o600))
	assert.False(t, WritableByOthers(0o755))
	assert.True(t, WritableByOthers(0o664))
	assert.True(t, WritableByOthers(0o777))
	assert.True(t, WritableByOthers(os.ModeDir|0o775))
}

func TestMatchesIdentity(t *testing.T) {
	assert.True(t, MatchesIdentity("svcbackup", "1042", "svcbackup"))
	assert.True(t, MatchesIdentity("svcbackup", "1042", "1042"))
	assert.False(t, MatchesIdentity("svcbackup", "1042", "root"))
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("0750")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), mode)

	mode, err = ParseMode("644")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), mode)

	_, err = ParseMode("abc")
	assert.Error(t, err)

	_, err = ParseMode("17777")
	assert.Error(t, err)
}

func TestAclWalkEmitsEveryEntry(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("y"), 0o600))

	c := chain.NewChain(
		NewAclWalkLink(),
	).WithConfigs(
		cfg.WithArg("root", root),
	)

	c.Send("run")
	c.Close()

	byPath := map[string]types.AclRecord{}
	for rec, ok := chain.RecvAs[types.AclRecord](c); ok; rec, ok = chain.RecvAs[types.AclRecord](c) {
		byPath[rec.Path] = rec
	}

	c.Wait()
	require.NoError(t, c.Error())

	// root, sub, and both files
	require.Len(t, byPath, 4)
	assert.True(t, byPath[root].IsDir)
	assert.Equal(t, types.StatusOK, byPath[filepath.Join(root, "a.txt")].Status)
	assert.Equal(t, "-rw-------", byPath[filepath.Join(root, "sub", "b.txt")].Mode)
	assert.NotEmpty(t, byPath[filepath.Join(root, "a.txt")].Owner)
}

func TestTreeChmodDryRunLeavesFilesAlone(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "data.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o666))

	c := chain.NewChain(
		NewTreeChmodLink(),
	).WithConfigs(
		cfg.WithArg("root", root),
		cfg.WithArg("mode", "0600"),
		cfg.WithArg("dry-run", true),
	)

	c.Send("run")
	c.Close()

	var actions []types.ActionRecord
	for rec, ok := chain.RecvAs[types.ActionRecord](c); ok; rec, ok = chain.RecvAs[types.ActionRecord](c) {
		actions = append(actions, rec)
	}

	c.Wait()
	require.NoError(t, c.Error())

	require.Len(t, actions, 2)
	for _, action := range actions {
		assert.Equal(t, types.StatusDryRun, action.Status)
	}

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o666), info.Mode().Perm())
}

func TestTreeChmodAppliesMode(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "data.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o666))

	c := chain.NewChain(
		NewTreeChmodLink(),
	).WithConfigs(
		cfg.WithArg("root", root),
		cfg.WithArg("mode", "0640"),
	)

	c.Send("run")
	c.Close()
	for _, ok := chain.RecvAs[types.ActionRecord](c); ok; _, ok = chain.RecvAs[types.ActionRecord](c) {
	}
	c.Wait()
	require.NoError(t, c.Error())

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}
