package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ryanvolz/radioconda/internal/adapters/config"
	"github.com/ryanvolz/radioconda/internal/app"
	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/ryanvolz/radioconda/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newComponents(ctrl *gomock.Controller, logger *mocks.MockLogger) *app.Components {
	a := app.New(
		mocks.NewMockEnvironmentLoader(ctrl),
		nil,
		mocks.NewMockInstallerBuilder(ctrl),
		mocks.NewMockMetapackageBuilder(ctrl),
		mocks.NewMockBuildInfoStore(ctrl),
		mocks.NewMockHasher(ctrl),
		mocks.NewMockTelemetry(ctrl),
		logger,
	)
	return app.NewComponents(a, logger, config.Settings{DistName: "radioconda", Platform: "linux-64"}, nil)
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	provider := func(_ context.Context) (*app.Components, error) {
		return newComponents(ctrl, logger), nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "dev")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrUnknownPlatform.Error())
	})

	provider := func(_ context.Context) (*app.Components, error) {
		return newComponents(ctrl, logger), nil
	}

	exitCode := run(context.Background(), []string{"installer", "installer_specs/buildenv"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
