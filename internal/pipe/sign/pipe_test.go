package sign

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/macreleaser/macpack/pkg/command"
	"github.com/macreleaser/macpack/pkg/config"
	macCtx "github.com/macreleaser/macpack/pkg/context"
	"github.com/sirupsen/logrus"
)

const testIdentity = "Developer ID Application: AHI Builder (ABCDE12345)"

func newSignContext(identity string) (*macCtx.Context, *command.MockRunner) {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	ctx := macCtx.NewContext(context.Background(), &config.Config{
		Sign: config.SignConfig{Identity: identity},
	}, logger)
	runner := command.NewMockRunner()
	ctx.Runner = runner
	ctx.Artifacts.AppPath = "dist/AHItool.app"
	return ctx, runner
}

func TestPipeAdHoc(t *testing.T) {
	ctx, runner := newSignContext("-")

	if err := (Pipe{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(runner.CallsTo("security")) != 0 {
		t.Error("ad-hoc signing must not query the keychain")
	}
	calls := runner.CallsTo("codesign")
	if len(calls) != 2 {
		t.Fatalf("codesign calls = %d, want 2", len(calls))
	}
	if got := calls[0].String(); got != "codesign --force --deep --sign - dist/AHItool.app" {
		t.Errorf("sign call = %q", got)
	}
	if got := calls[1].String(); got != "codesign --verify --deep --strict dist/AHItool.app" {
		t.Errorf("verify call = %q", got)
	}
}

func TestPipeIdentity(t *testing.T) {
	ctx, runner := newSignContext(testIdentity)
	runner.Outputs["security"] = `  1) ABCDEF0123456789ABCDEF0123456789ABCDEF01 "` + testIdentity + `"
     1 valid identities found`

	if err := (Pipe{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	calls := runner.Calls()
	if len(calls) != 3 || calls[0].Name != "security" {
		t.Errorf("calls = %v, want security then two codesign calls", calls)
	}
}

func TestPipeIdentityNotInstalled(t *testing.T) {
	ctx, runner := newSignContext(testIdentity)
	runner.Outputs["security"] = "     0 valid identities found"

	err := Pipe{}.Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "identity validation failed") {
		t.Fatalf("Run() error = %v", err)
	}
	if len(runner.CallsTo("codesign")) != 0 {
		t.Error("codesign must not run when the identity is missing")
	}
}

func TestPipeVerifyFailure(t *testing.T) {
	ctx, runner := newSignContext("-")
	runner.OnRun = func(name string, args []string) error {
		if len(args) > 0 && args[0] == "--verify" {
			return errors.New("exit status 1")
		}
		return nil
	}

	err := Pipe{}.Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "signature verification failed") {
		t.Errorf("Run() error = %v", err)
	}
}

func TestPipeNoApp(t *testing.T) {
	ctx, _ := newSignContext("-")
	ctx.Artifacts.AppPath = ""

	if err := (Pipe{}).Run(ctx); err == nil {
		t.Error("expected error without an app bundle")
	}
}
