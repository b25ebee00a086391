package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reel/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [composition file]",
		Short: "Evaluate a composition and print its render plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			timeout, _ := cmd.Flags().GetDuration("timeout")

			return c.app.Render(cmd.Context(), args[0], cmd.OutOrStdout(), app.RenderOptions{
				Timeout: timeout,
			})
		},
	}
	cmd.Flags().DurationP("timeout", "t", 0, "Abort evaluation after this duration (0 disables)")
	return cmd
}
