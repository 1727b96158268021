package outputters

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/castellanops/cumulus/internal/message"
	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// TabularCSVOutputter collects report rows and writes them to a single CSV
// file when the chain completes. Rows with differing headers are written
// in encounter order under the first row's header.
type TabularCSVOutputter struct {
	*chain.BaseOutputter
	rows    []types.Row
	outfile string
}

func NewTabularCSVOutputter(configs ...cfg.Config) chain.Outputter {
	o := &TabularCSVOutputter{
		outfile: "report.csv",
	}
	o.BaseOutputter = chain.NewBaseOutputter(o, configs...)
	return o
}

func (o *TabularCSVOutputter) Params() []cfg.Param {
	return []cfg.Param{
		cfg.NewParam[string]("csvoutfile", "file to write the CSV report to").WithDefault("report.csv"),
		options.OutputDir(),
	}
}

func (o *TabularCSVOutputter) Initialize() error {
	outfile, err := cfg.As[string](o.Arg("csvoutfile"))
	if err == nil && outfile != "" {
		o.outfile = outfile
	}
	outdir, _ := cfg.As[string](o.Arg("output"))
	o.outfile = ResolveOutputPath(outdir, o.outfile)
	return nil
}

// Output collects rows for the final CSV. Non-row values are ignored so
// the outputter can share a chain with JSON output.
func (o *TabularCSVOutputter) Output(v any) error {
	row, ok := v.(types.Row)
	if !ok {
		return nil
	}
	o.rows = append(o.rows, row)
	return nil
}

func (o *TabularCSVOutputter) Complete() error {
	if len(o.rows) == 0 {
		slog.Info("No rows to write to CSV")
		return nil
	}

	if err := EnsureFileDirectory(o.outfile); err != nil {
		return err
	}

	file, err := os.Create(o.outfile)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(o.rows[0].Headers()); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range o.rows {
		if err := writer.Write(row.Values()); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	message.Success("CSV report written to %s (%d rows)", o.outfile, len(o.rows))
	return nil
}
