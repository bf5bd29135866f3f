package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry and journal operations
var (
	// ErrAlreadyRegistered is returned when adding a module whose identity
	// key is already present in the manifest
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrNotRegistered is returned when removing a module that is not in
	// the manifest
	ErrNotRegistered = errors.New("not registered")

	// ErrNotInProject is returned when a non-external module path resolves
	// outside the project root
	ErrNotInProject = errors.New("module does not belong to the project")

	// ErrAbsoluteExternalPath is returned when an external module path
	// starts with a path-root marker
	ErrAbsoluteExternalPath = errors.New("forbidden absolute external path")

	// ErrNotDeployed is returned when a future id has no journaled address
	ErrNotDeployed = errors.New("not deployed")

	// ErrCorruptedContract is returned when a journaled artifact has a
	// missing or empty ABI
	ErrCorruptedContract = errors.New("corrupted contract data")

	// ErrNoActiveNetwork is returned when an operation needs a chain id but
	// no network is configured
	ErrNoActiveNetwork = errors.New("no active network")
)

// ModuleImportError reports that neither the chain-qualified variant nor the
// base path of a descriptor could be loaded.
type ModuleImportError struct {
	Descriptor ModuleDescriptor
	ChainID    uint64
	VariantErr error
	BaseErr    error
}

func (e *ModuleImportError) Error() string {
	kind := "project"
	if e.Descriptor.External {
		kind = "external"
	}
	return fmt.Sprintf("cannot import %s module %s (chain %d): %v", kind, e.Descriptor.Path, e.ChainID, e.BaseErr)
}

func (e *ModuleImportError) Unwrap() error {
	return e.BaseErr
}
