package outputters

import (
	"fmt"
	"log/slog"

	"github.com/castellanops/cumulus/internal/message"
	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/xuri/excelize/v2"
)

const reportSheet = "Report"

// XLSXOutputter collects report rows and writes a spreadsheet with a bold
// header row when the chain completes.
type XLSXOutputter struct {
	*chain.BaseOutputter
	rows    []types.Row
	outfile string
}

func NewXLSXOutputter(configs ...cfg.Config) chain.Outputter {
	o := &XLSXOutputter{
		outfile: "report.xlsx",
	}
	o.BaseOutputter = chain.NewBaseOutputter(o, configs...)
	return o
}

func (o *XLSXOutputter) Params() []cfg.Param {
	return []cfg.Param{
		cfg.NewParam[string]("xlsxoutfile", "file to write the spreadsheet report to").WithDefault("report.xlsx"),
		options.OutputDir(),
	}
}

func (o *XLSXOutputter) Initialize() error {
	outfile, err := cfg.As[string](o.Arg("xlsxoutfile"))
	if err == nil && outfile != "" {
		o.outfile = outfile
	}
	outdir, _ := cfg.As[string](o.Arg("output"))
	o.outfile = ResolveOutputPath(outdir, o.outfile)
	return nil
}

func (o *XLSXOutputter) Output(v any) error {
	row, ok := v.(types.Row)
	if !ok {
		return nil
	}
	o.rows = append(o.rows, row)
	return nil
}

func (o *XLSXOutputter) Complete() error {
	if len(o.rows) == 0 {
		slog.Info("No rows to write to spreadsheet")
		return nil
	}

	if err := EnsureFileDirectory(o.outfile); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := o.rows[0].Headers()
	headerCells := make([]interface{}, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(reportSheet, "A1", &headerCells); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(reportSheet, "A1", endCell, boldStyle)
	}

	for i, row := range o.rows {
		values := row.Values()
		cells := make([]interface{}, len(values))
		for j, v := range values {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(reportSheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(o.outfile); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}

	message.Success("Spreadsheet report written to %s (%d rows)", o.outfile, len(o.rows))
	return nil
}
