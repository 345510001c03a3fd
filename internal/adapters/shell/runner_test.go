package shell_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/ryanvolz/radioconda/internal/adapters/shell"
	"github.com/ryanvolz/radioconda/internal/adapters/telemetry"
	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/ryanvolz/radioconda/internal/core/ports"
	"github.com/ryanvolz/radioconda/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_StreamsToLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Info("hello"),
		mockLogger.EXPECT().Info("world"),
	)
	mockLogger.EXPECT().Warn("careful")

	runner := shell.NewRunner(mockLogger, telemetry.NewNoOpTracer())

	err := runner.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo hello; echo world; echo careful >&2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestRunner_Run_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("boom")

	runner := shell.NewRunner(mockLogger, telemetry.NewNoOpTracer())

	err := runner.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo boom >&2; exit 3"},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCommandFailed.Error())
}

func TestRunner_Run_CopiesToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("to stdout")
	mockLogger.EXPECT().Warn("to stderr")

	var stdoutBuf, stderrBuf bytes.Buffer
	mockVertex := mocks.NewMockVertex(ctrl)
	mockVertex.EXPECT().Stdout().Return(&stdoutBuf).AnyTimes()
	mockVertex.EXPECT().Stderr().Return(&stderrBuf).AnyTimes()

	runner := shell.NewRunner(mockLogger, telemetry.NewNoOpTracer())
	ctx := ports.ContextWithVertex(context.Background(), mockVertex)

	err := runner.Run(ctx, domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo to stdout; echo to stderr >&2"},
	})
	require.NoError(t, err)

	assert.Equal(t, "to stdout\n", stdoutBuf.String())
	assert.Equal(t, "to stderr\n", stderrBuf.String())
}

func TestRunner_Output(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := shell.NewRunner(mocks.NewMockLogger(ctrl), telemetry.NewNoOpTracer())

	out, err := runner.Output(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo $RADIOCONDA_TEST_VAR"},
		Env:  []string{"RADIOCONDA_TEST_VAR=win-64"},
	})
	require.NoError(t, err)
	assert.Equal(t, "win-64\n", string(out))
}

func TestRunner_Output_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := shell.NewRunner(mocks.NewMockLogger(ctrl), telemetry.NewNoOpTracer())

	out, err := runner.Output(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo partial; exit 2"},
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorContains(t, err, domain.ErrCommandFailed.Error())
}

func TestRunner_RecordsSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	runner := shell.NewRunner(mockLogger, telemetry.NewOTelTracerWithProvider(tp, "test"))

	err := runner.Run(context.Background(), domain.Command{Name: "sh", Args: []string{"-c", "exit 4"}})
	require.Error(t, err)

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "sh", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.String("command", "sh -c exit 4"))
	assert.Contains(t, ended[0].Attributes(), attribute.Int("exit_code", 4))
	assert.Equal(t, codes.Error, ended[0].Status().Code)
}

func TestRunner_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := shell.NewRunner(mocks.NewMockLogger(ctrl), telemetry.NewNoOpTracer())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.Run(ctx, domain.Command{Name: "sh", Args: []string{"-c", "sleep 5"}})
	require.Error(t, err)
}
