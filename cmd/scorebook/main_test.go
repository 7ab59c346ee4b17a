package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/scorebook/internal/adapters/codec"
	"go.trai.ch/scorebook/internal/app"
	"go.trai.ch/scorebook/internal/core/domain"
	"go.trai.ch/scorebook/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T, loader *mocks.MockConfigLoader, log *mocks.MockLogger) ComponentProvider {
	t.Helper()
	application := app.New(loader, log, codec.NewFramed[domain.RunTable](), nil)
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := newProvider(t, mocks.NewMockConfigLoader(ctrl), mocks.NewMockLogger(ctrl))

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "scorebook version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that a failing command is logged and returns 1.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)

	loadErr := errors.New("load failed")
	loader.EXPECT().Load(".").Return(domain.Config{}, loadErr)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, "failed to load configuration")
	})

	exitCode := run(context.Background(), []string{"verify"}, new(bytes.Buffer), new(bytes.Buffer), newProvider(t, loader, log))
	assert.Equal(t, 1, exitCode)
}

// TestRun_ShowMissingArtifact verifies that an absent artifact is reported as an error.
func TestRun_ShowMissingArtifact(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)

	loader.EXPECT().Load(".").Return(domain.Config{
		Book:             t.TempDir(),
		LogLevel:         domain.LogInfo,
		FlushConcurrency: 1,
	}, nil)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrArtifactNotAvailable.Error())
	})

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"show", "1", domain.BinaryArtifact}, stdout, new(bytes.Buffer), newProvider(t, loader, log))

	assert.Equal(t, 1, exitCode)
	assert.Empty(t, stdout.String())
}
