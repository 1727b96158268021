package outputters

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// TableConsoleOutputter streams report rows to stdout as an aligned table,
// printing the header before the first row.
type TableConsoleOutputter struct {
	*chain.BaseOutputter
	w           *tabwriter.Writer
	wroteHeader bool
}

func NewTableConsoleOutputter(configs ...cfg.Config) chain.Outputter {
	o := &TableConsoleOutputter{
		w: tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0),
	}
	o.BaseOutputter = chain.NewBaseOutputter(o, configs...)
	return o
}

func (o *TableConsoleOutputter) Output(val any) error {
	row, ok := val.(types.Row)
	if !ok {
		return nil
	}

	if !o.wroteHeader {
		writeTabbed(o.w, row.Headers())
		o.wroteHeader = true
	}
	writeTabbed(o.w, row.Values())
	return nil
}

func (o *TableConsoleOutputter) Complete() error {
	return o.w.Flush()
}

func (o *TableConsoleOutputter) Params() []cfg.Param {
	return []cfg.Param{}
}

func writeTabbed(w *tabwriter.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}
