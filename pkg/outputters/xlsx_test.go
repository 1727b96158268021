package outputters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/castellanops/cumulus/pkg/links/fsacl"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXOutputterWritesReadableWorkbook(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("y"), 0o644))

	outfile := filepath.Join(t.TempDir(), "acl.xlsx")

	c := chain.NewChain(
		fsacl.NewAclWalkLink(),
	).WithOutputters(
		NewXLSXOutputter(),
	).WithConfigs(
		cfg.WithArg("root", root),
		cfg.WithArg("xlsxoutfile", outfile),
	)

	c.Send("run")
	c.Close()
	c.Wait()
	require.NoError(t, c.Error())

	f, err := excelize.OpenFile(outfile)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)

	// header plus root dir and two files
	require.Len(t, rows, 4)
	assert.Equal(t, types.AclRecord{}.Headers(), rows[0])
}
