package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eykd/fmlint/internal/lint"
)

// tagJSON is one tag in the tags command's JSON output.
type tagJSON struct {
	Tag        string `json:"tag"`
	Count      int    `json:"count"`
	Known      bool   `json:"known"`
	Suggestion string `json:"suggestion,omitempty"`
}

type tagsJSONResponse struct {
	Documents int       `json:"documents"`
	Tags      []tagJSON `json:"tags"`
}

func formatTagsJSON(w io.Writer, usage *lint.TagUsage) {
	out := tagsJSONResponse{Documents: usage.Documents, Tags: []tagJSON{}}
	for _, t := range usage.Tags {
		out.Tags = append(out.Tags, tagJSON(t))
	}
	writeJSON(w, out)
}

func formatTagsHuman(w io.Writer, usage *lint.TagUsage, st styler) {
	fmt.Fprintf(w, "%d tag(s) across %d document(s)\n", len(usage.Tags), usage.Documents)
	for _, t := range usage.Tags {
		note := ""
		switch {
		case t.Known:
		case t.Suggestion != "":
			note = fmt.Sprintf(" (not in vocabulary; did you mean %q?)", t.Suggestion)
		default:
			note = " (not in vocabulary)"
		}
		fmt.Fprintf(w, "%5d  %s%s\n", t.Count, t.Tag, st.render(st.muted, note))
	}
}

// NewTagsCmd creates the tags command, which reports tag usage against
// the vocabulary. It never fails because of unknown tags.
func NewTagsCmd(factory LinterFactory) *cobra.Command {
	var flags sweepFlags

	cmd := &cobra.Command{
		Use:          "tags [root]",
		Short:        "List tags in use and whether each is in the vocabulary",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			linter, err := flags.linterFor(cmd, args, factory)
			if err != nil {
				return err
			}
			usage, err := linter.Tags(cmd.Context())
			if err != nil {
				return &ContextError{Op: "tags", Err: err}
			}
			if flags.jsonOutput {
				formatTagsJSON(cmd.OutOrStdout(), usage)
			} else {
				formatTagsHuman(cmd.OutOrStdout(), usage, newStyler(cmd.OutOrStdout()))
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
