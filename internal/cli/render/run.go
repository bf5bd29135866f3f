package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

var titleCaser = cases.Title(language.English)

// RunRenderer renders the outcome of a registry replay.
type RunRenderer struct {
	out io.Writer
}

// NewRunRenderer creates a new run renderer
func NewRunRenderer(out io.Writer) *RunRenderer {
	return &RunRenderer{out: out}
}

// Render writes the per-module deploy records and a closing status line
func (r *RunRenderer) Render(result *usecase.RunModulesResult) error {
	if len(result.Outcomes) == 0 {
		fmt.Fprintf(r.out, "Nothing to deploy (deployment %s)\n", result.DeploymentID)
		return nil
	}

	if result.Reset {
		fmt.Fprintf(r.out, "%s Journal %s reset\n", color.YellowString("↺"), result.DeploymentID)
	}

	for _, outcome := range result.Outcomes {
		fmt.Fprintf(r.out, "\n%s\n", color.New(color.Bold).Sprint(titleCaser.String(outcome.Module)))

		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Future", "Contract", "Address", "Status"})

		for _, rec := range outcome.Records {
			status := color.GreenString("deployed")
			if rec.Skipped {
				status = color.New(color.Faint).Sprint("skipped")
			}
			t.AppendRow(table.Row{rec.FutureID, rec.ContractName, rec.Address, status})
		}
		t.Render()
	}

	fmt.Fprintf(r.out, "\n%s Deployment %s complete\n",
		color.GreenString("✓"), result.DeploymentID)
	return nil
}

var _ Renderer[*usecase.RunModulesResult] = (*RunRenderer)(nil)
