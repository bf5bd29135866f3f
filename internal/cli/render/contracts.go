package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

// ContractsRenderer renders a deployment's address map.
type ContractsRenderer struct {
	out io.Writer
}

// NewContractsRenderer creates a new contracts renderer
func NewContractsRenderer(out io.Writer) *ContractsRenderer {
	return &ContractsRenderer{out: out}
}

// Render writes the deployed contract table
func (r *ContractsRenderer) Render(result *usecase.ContractListResult) error {
	if len(result.Contracts) == 0 {
		fmt.Fprintf(r.out, "No contracts deployed in %s\n", result.DeploymentID)
		return nil
	}

	fmt.Fprintf(r.out, "Deployment %s\n", color.New(color.Bold).Sprint(result.DeploymentID))

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Future", "Address"})

	for _, c := range result.Contracts {
		t.AppendRow(table.Row{c.FutureID, c.Address})
	}
	t.Render()
	return nil
}

var _ Renderer[*usecase.ContractListResult] = (*ContractsRenderer)(nil)

// ContractHandleRenderer renders a resolved contract handle.
type ContractHandleRenderer struct {
	out io.Writer
}

// NewContractHandleRenderer creates a new contract handle renderer
func NewContractHandleRenderer(out io.Writer) *ContractHandleRenderer {
	return &ContractHandleRenderer{out: out}
}

// Render writes the handle's address and callable interface
func (r *ContractHandleRenderer) Render(result *usecase.ResolveContractResult) error {
	h := result.Handle

	fmt.Fprintf(r.out, "%s %s\n", color.New(color.Bold).Sprint(h.FutureID), h.Address.Hex())

	if len(h.ABI.Methods) > 0 {
		fmt.Fprintln(r.out, "\nMethods:")
		for _, m := range h.ABI.Methods {
			fmt.Fprintf(r.out, "  %s\n", m.Sig)
		}
	}
	return nil
}

var _ Renderer[*usecase.ResolveContractResult] = (*ContractHandleRenderer)(nil)
