package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

var (
	externalStyle   = color.New(color.FgCyan)
	unresolvedStyle = color.New(color.Faint)
)

// ModulesRenderer renders the module registry as a table in deployment order.
type ModulesRenderer struct {
	out io.Writer
}

// NewModulesRenderer creates a new modules renderer
func NewModulesRenderer(out io.Writer) *ModulesRenderer {
	return &ModulesRenderer{out: out}
}

// Render writes the registry listing
func (r *ModulesRenderer) Render(result *usecase.ModuleListResult) error {
	if len(result.Entries) == 0 {
		fmt.Fprintln(r.out, "No modules registered")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Module", "Kind", "Results"})

	for i, entry := range result.Entries {
		kind := "project"
		if entry.Descriptor.External {
			kind = externalStyle.Sprint("external")
		}

		results := unresolvedStyle.Sprint("-")
		if len(entry.ResultIDs) > 0 {
			results = strings.Join(entry.ResultIDs, ", ")
		}

		t.AppendRow(table.Row{i + 1, entry.Descriptor.Path, kind, results})
	}

	t.Render()
	return nil
}

var _ Renderer[*usecase.ModuleListResult] = (*ModulesRenderer)(nil)
