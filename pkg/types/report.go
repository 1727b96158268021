package types

// Row is implemented by every report record. Headers and Values must stay
// aligned; the tabular outputters (CSV, XLSX, console table) render rows
// from these two slices alone.
type Row interface {
	Headers() []string
	Values() []string
}

// Action statuses for mutation records.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
	StatusDryRun  = "dry-run"
	StatusError   = "error"
)

// ActionRecord is the outcome of a single mutation attempt: one row per
// target object, with a status instead of aborting the run.
type ActionRecord struct {
	Target string
	Action string
	Status string
	Detail string
}

func (r ActionRecord) Headers() []string {
	return []string{"Target", "Action", "Status", "Detail"}
}

func (r ActionRecord) Values() []string {
	return []string{r.Target, r.Action, r.Status, r.Detail}
}
