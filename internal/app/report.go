package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"go.trai.ch/reel/internal/engine/expander"
)

// writeReport renders the evaluated plan as a fixed-order text table, one
// row per scheduled leaf. Output is deterministic for a given composition.
func writeReport(w io.Writer, name string, plans []*expander.RenderPlan) error {
	if _, err := fmt.Fprintf(w, "composition: %s\n", name); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "#\tSTART\tEND\tPROCESSOR\tOUTPUT"); err != nil {
		return err
	}

	row := 0
	for _, plan := range plans {
		for _, leaf := range plan.Leaves {
			if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
				row,
				leaf.Start.String(),
				leaf.End.String(),
				leaf.Executable.ProcessorRef,
				leafKind(leaf),
			); err != nil {
				return err
			}
			row++
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d leaves\n", row)
	return err
}

func leafKind(leaf expander.ScheduledLeaf) string {
	switch {
	case leaf.Executable.Image != nil && leaf.Executable.Audio != nil:
		return "image+audio"
	case leaf.Executable.Image != nil:
		return "image"
	case leaf.Executable.Audio != nil:
		return "audio"
	default:
		return "none"
	}
}
