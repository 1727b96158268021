package outputters

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/castellanops/cumulus/pkg/links/fsacl"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabularCSVOutputter(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0o644))

	outfile := filepath.Join(t.TempDir(), "reports", "acl.csv")

	c := chain.NewChain(
		fsacl.NewAclWalkLink(),
	).WithOutputters(
		NewTabularCSVOutputter(),
	).WithConfigs(
		cfg.WithArg("root", root),
		cfg.WithArg("csvoutfile", outfile),
	)

	c.Send("run")
	c.Close()
	c.Wait()
	require.NoError(t, c.Error())

	f, err := os.Open(outfile)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.NotEmpty(t, records)
	assert.Equal(t, types.AclRecord{}.Headers(), records[0])
	// header plus root dir and one file
	assert.Len(t, records, 3)
}

func TestOutputDirPrefixesRelativeOutfile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0o644))

	outdir := t.TempDir()

	c := chain.NewChain(
		fsacl.NewAclWalkLink(),
	).WithOutputters(
		NewTabularCSVOutputter(),
	).WithConfigs(
		cfg.WithArg("root", root),
		cfg.WithArg("csvoutfile", "acl.csv"),
		cfg.WithArg("output", outdir),
	)

	c.Send("run")
	c.Close()
	c.Wait()
	require.NoError(t, c.Error())

	_, err := os.Stat(filepath.Join(outdir, "acl.csv"))
	assert.NoError(t, err)
}

func TestResolveOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("cumulus-output", "report.csv"), ResolveOutputPath("cumulus-output", "report.csv"))
	assert.Equal(t, "report.csv", ResolveOutputPath("", "report.csv"))
	abs := filepath.Join(string(filepath.Separator), "tmp", "report.csv")
	assert.Equal(t, abs, ResolveOutputPath("cumulus-output", abs))
}

func TestEnsureFileDirectory(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "nested", "dir", "out.csv")

	require.NoError(t, EnsureFileDirectory(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, EnsureFileDirectory("plain.csv"))
}
