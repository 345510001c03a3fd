// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/ryanvolz/radioconda/internal/core/domain"
)

// CommandRunner runs external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes the command, streaming its output to the logger.
	// A non-zero exit status is returned as domain.ErrCommandFailed.
	Run(ctx context.Context, cmd domain.Command) error

	// Output executes the command and returns its standard output.
	Output(ctx context.Context, cmd domain.Command) ([]byte, error)
}
