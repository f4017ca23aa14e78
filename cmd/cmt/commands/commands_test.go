package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanji-dg/cmt/cmd/cmt/commands"
	"github.com/tanji-dg/cmt/internal/adapters/telemetry"
	"github.com/tanji-dg/cmt/internal/app"
	"github.com/tanji-dg/cmt/internal/core/domain"
	"github.com/tanji-dg/cmt/internal/core/ports"
	"github.com/tanji-dg/cmt/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	cli      *commands.CLI
	driver   *mocks.MockDriver
	variants *mocks.MockVariantLoader
}

func newHarness(t *testing.T, cfg *domain.ProjectConfig) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	if cfg == nil {
		cfg = &domain.ProjectConfig{}
	}
	driver := mocks.NewMockDriver(ctrl)
	variants := mocks.NewMockVariantLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	a := app.New(cfg, driver, variants, telemetry.NewNoopTracer(), logger)
	return &harness{
		cli:      commands.New(a),
		driver:   driver,
		variants: variants,
	}
}

func settledSubprocess(ctrl *gomock.Controller, code int) ports.Subprocess {
	sub := mocks.NewMockSubprocess(ctrl)
	sub.EXPECT().Wait(gomock.Any()).Return(domain.ExecutionResult{ExitCode: code}, nil).AnyTimes()
	return sub
}

func TestConfigure(t *testing.T) {
	h := newHarness(t, nil)
	h.driver.EXPECT().Configure(gomock.Any(), gomock.Any()).Return(0, nil).Times(1)

	h.cli.SetArgs([]string{"configure"})
	require.NoError(t, h.cli.Execute(t.Context()))
}

func TestConfigure_WithKitAndVariant(t *testing.T) {
	cfg := &domain.ProjectConfig{
		Kits: []domain.Kit{{Name: "gcc", Type: domain.KitCompilers}},
	}
	h := newHarness(t, cfg)

	h.variants.EXPECT().Load(".").Return(map[string]domain.VariantOptions{
		"release": {BuildType: "Release"},
	}, nil).Times(1)

	gomock.InOrder(
		h.driver.EXPECT().SetKit(gomock.Any(), cfg.Kits[0]).Return(nil),
		h.driver.EXPECT().SetVariantOptions(domain.VariantOptions{BuildType: "Release"}),
		h.driver.EXPECT().Configure(gomock.Any(), gomock.Any()).Return(0, nil),
	)

	h.cli.SetArgs([]string{"configure", "--kit", "gcc", "--variant", "release"})
	require.NoError(t, h.cli.Execute(t.Context()))
}

func TestConfigure_UnknownKit(t *testing.T) {
	h := newHarness(t, nil)

	h.cli.SetArgs([]string{"configure", "-k", "missing"})
	err := h.cli.Execute(t.Context())
	require.ErrorIs(t, err, domain.ErrKitNotFound)
}

func TestCleanConfigure(t *testing.T) {
	h := newHarness(t, nil)
	h.driver.EXPECT().CleanConfigure(gomock.Any(), gomock.Any()).Return(0, nil).Times(1)

	h.cli.SetArgs([]string{"clean-configure"})
	require.NoError(t, h.cli.Execute(t.Context()))
}

func TestBuild_DefaultTarget(t *testing.T) {
	h := newHarness(t, nil)
	ctrl := gomock.NewController(t)

	h.driver.EXPECT().NeedsReconfigure().Return(false)
	h.driver.EXPECT().Build(gomock.Any(), "all", gomock.Any()).
		Return(settledSubprocess(ctrl, 0), nil)

	h.cli.SetArgs([]string{"build"})
	require.NoError(t, h.cli.Execute(t.Context()))
}

func TestBuild_NamedTarget(t *testing.T) {
	h := newHarness(t, nil)
	ctrl := gomock.NewController(t)

	h.driver.EXPECT().NeedsReconfigure().Return(false)
	h.driver.EXPECT().Build(gomock.Any(), "tests", gomock.Any()).
		Return(settledSubprocess(ctrl, 0), nil)

	h.cli.SetArgs([]string{"build", "tests"})
	require.NoError(t, h.cli.Execute(t.Context()))
}

func TestBuild_FailureExitCode(t *testing.T) {
	h := newHarness(t, nil)
	ctrl := gomock.NewController(t)

	h.driver.EXPECT().NeedsReconfigure().Return(false)
	h.driver.EXPECT().Build(gomock.Any(), "all", gomock.Any()).
		Return(settledSubprocess(ctrl, 2), nil)

	h.cli.SetArgs([]string{"build"})
	err := h.cli.Execute(t.Context())
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}

func TestTargets(t *testing.T) {
	h := newHarness(t, nil)
	h.driver.EXPECT().Targets().Return([]domain.Target{
		domain.NamedTarget("app"),
		domain.NamedTarget("tests"),
	})

	h.cli.SetArgs([]string{"targets"})
	require.NoError(t, h.cli.Execute(t.Context()))
}

func TestVersion(t *testing.T) {
	h := newHarness(t, nil)

	h.cli.SetArgs([]string{"version"})
	require.NoError(t, h.cli.Execute(t.Context()))
}

func TestUnknownCommand(t *testing.T) {
	h := newHarness(t, nil)

	h.cli.SetArgs([]string{"frobnicate"})
	err := h.cli.Execute(t.Context())
	assert.Error(t, err)
}
