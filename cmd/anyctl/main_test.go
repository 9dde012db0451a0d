package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mwatts/anyctl/internal/adapters/telemetry"
	"github.com/mwatts/anyctl/internal/app"
	"github.com/mwatts/anyctl/internal/core/ports/mocks"
	"github.com/mwatts/anyctl/internal/resolve"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestComponents(ctrl *gomock.Controller) (*app.Components, *mocks.MockDirectory, *mocks.MockLogger) {
	mockDir := mocks.NewMockDirectory(ctrl)
	mockDefaults := mocks.NewMockDefaults(ctrl)
	mockDefaults.EXPECT().DefaultSpace().Return("").AnyTimes()
	mockLogger := mocks.NewMockLogger(ctrl)

	resolver := resolve.NewResolver(mockDir, time.Minute)
	application := app.New(resolver, mockDir, mockDefaults, mockLogger, telemetry.NewNoOpTracer())

	return &app.Components{App: application, Logger: mockLogger}, mockDir, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, _, _ := newTestComponents(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, mockDir, mockLogger := newTestComponents(ctrl)
	mockDir.EXPECT().
		FindByName(gomock.Any(), "", "Home").
		Return(nil, errors.New("network down"))
	mockLogger.EXPECT().Error(gomock.Any())

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"resolve", "space", "Home"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}
