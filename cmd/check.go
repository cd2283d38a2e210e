package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eykd/fmlint/internal/lint"
)

// Report headlines, matching the output of the original publishing check.
const (
	SuccessMessage = "All document frontmatter is valid."
	FailureBanner  = "Frontmatter validation failed:"
)

// CheckFinding represents a single violation in JSON output.
type CheckFinding struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// checkJSONResponse is the JSON output structure for the check command.
type checkJSONResponse struct {
	Findings []CheckFinding `json:"findings"`
	Summary  struct {
		Documents int `json:"documents"`
		Invalid   int `json:"invalid"`
	} `json:"summary"`
}

// FindingsDetectedError is returned when check detects violations.
type FindingsDetectedError struct {
	Invalid   int
	Documents int
}

// Error implements the error interface.
func (e *FindingsDetectedError) Error() string {
	return fmt.Sprintf("%d of %d documents have frontmatter violations", e.Invalid, e.Documents)
}

// ExitCode returns the exit code for findings (always 1).
func (e *FindingsDetectedError) ExitCode() int {
	return 1
}

// formatCheckJSON writes the report as JSON to w.
func formatCheckJSON(w io.Writer, report *lint.Report) {
	out := checkJSONResponse{Findings: []CheckFinding{}}
	for _, f := range report.Findings() {
		out.Findings = append(out.Findings, CheckFinding{Type: f.Type, Message: f.Message, Path: f.Path})
	}
	out.Summary.Documents = report.Checked()
	out.Summary.Invalid = report.Len()
	writeJSON(w, out)
}

// formatCheckHuman writes the report as text: a success line, or the
// failure banner followed by one block per invalid document.
func formatCheckHuman(w io.Writer, report *lint.Report, st styler) {
	if report.Valid() {
		fmt.Fprintln(w, st.render(st.success, SuccessMessage))
		return
	}

	fmt.Fprintln(w, st.render(st.failure, FailureBanner))
	for _, e := range report.Entries() {
		fmt.Fprintf(w, "\n%s:\n", st.render(st.path, e.Path))
		for _, v := range e.Violations {
			fmt.Fprintf(w, "  - %s\n", v)
		}
	}
}

// runCheckAndReport runs the linter and formats the report as JSON or
// human-readable text. It returns a FindingsDetectedError if any document
// is invalid.
func runCheckAndReport(cmd *cobra.Command, linter Linter, jsonOutput bool) error {
	report, err := linter.Run(cmd.Context())
	if err != nil {
		return &ContextError{Op: "check", Err: err}
	}

	if jsonOutput {
		formatCheckJSON(cmd.OutOrStdout(), report)
	} else {
		formatCheckHuman(cmd.OutOrStdout(), report, newStyler(cmd.OutOrStdout()))
	}

	if !report.Valid() {
		return &FindingsDetectedError{Invalid: report.Len(), Documents: report.Checked()}
	}
	return nil
}

// NewCheckCmd creates the check command, building its linter with factory.
func NewCheckCmd(factory LinterFactory) *cobra.Command {
	var flags sweepFlags

	cmd := &cobra.Command{
		Use:          "check [root]",
		Short:        "Validate frontmatter of every document under root",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			linter, err := flags.linterFor(cmd, args, factory)
			if err != nil {
				return err
			}
			return runCheckAndReport(cmd, linter, flags.jsonOutput)
		},
	}

	flags.register(cmd)

	return cmd
}
