package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencivica/a11y-gate/internal/a11ygate"
	"github.com/opencivica/a11y-gate/internal/report"
)

func newRenderCmd() *cobra.Command {
	var standard string
	var input string
	var output string
	var dir string

	cmd := &cobra.Command{
		Use:           "render",
		Short:         "Render a persisted compliance report to a static HTML page",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := report.NewConsoleLogger()
			defer log.Sync()

			out, err := a11ygate.Render(a11ygate.RenderConfig{
				Standard:   standard,
				InputPath:  input,
				OutputPath: output,
				Dir:        dir,
			}, log)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "wrote", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&standard, "standard", "ALL", "Standard code to render, or ALL for the aggregate page")
	cmd.Flags().StringVar(&input, "input", "", "Report JSON to read (default derived from --standard)")
	cmd.Flags().StringVar(&output, "output", "", "HTML file to write (default derived from --standard)")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory for derived default paths (default CWD)")
	return cmd
}
