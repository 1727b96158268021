package outputters

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

const defaultJSONOutfile = "report.json"

// JSONOutputter buffers everything sent through the chain and writes a
// single JSON array on completion.
type JSONOutputter struct {
	*chain.BaseOutputter
	indent  int
	output  []any
	outfile string
}

func NewJSONOutputter(configs ...cfg.Config) chain.Outputter {
	j := &JSONOutputter{}
	j.BaseOutputter = chain.NewBaseOutputter(j, configs...)
	return j
}

func (j *JSONOutputter) Initialize() error {
	outfile, err := cfg.As[string](j.Arg("jsonoutfile"))
	if err != nil {
		outfile = defaultJSONOutfile
	}
	outdir, _ := cfg.As[string](j.Arg("output"))
	j.outfile = ResolveOutputPath(outdir, outfile)

	indent, err := cfg.As[int](j.Arg("indent"))
	if err != nil {
		indent = 2
	}
	j.indent = indent

	slog.Debug("initialized JSON outputter", "file", j.outfile, "indent", j.indent)
	return nil
}

func (j *JSONOutputter) Output(val any) error {
	j.output = append(j.output, val)
	return nil
}

func (j *JSONOutputter) Complete() error {
	slog.Debug("writing JSON output", "filename", j.outfile, "entries", len(j.output))

	if err := EnsureFileDirectory(j.outfile); err != nil {
		return err
	}

	writer, err := os.Create(j.outfile)
	if err != nil {
		return fmt.Errorf("error creating JSON file %s: %w", j.outfile, err)
	}
	defer writer.Close()

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", strings.Repeat(" ", j.indent))

	return encoder.Encode(j.output)
}

func (j *JSONOutputter) Params() []cfg.Param {
	return []cfg.Param{
		cfg.NewParam[string]("jsonoutfile", "file to write the JSON report to").WithDefault(defaultJSONOutfile),
		cfg.NewParam[int]("indent", "number of spaces to use for JSON indentation").WithDefault(2),
		options.OutputDir(),
	}
}
