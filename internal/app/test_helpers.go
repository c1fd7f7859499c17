package app

import (
	"context"
	"os"
	"testing"

	"github.com/vk/modkit/internal/registry"
	"github.com/vk/modkit/internal/testutil"
)

// SetupAppTest creates a new app instance with debug logging captured in the
// returned buffer. It fails the test if the app cannot be built.
func SetupAppTest(t *testing.T, cfg Config, modules ...registry.Module) (*App, *testutil.SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	config, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	logBuffer := &testutil.SafeBuffer{}
	testApp, err := NewApp(context.Background(), logBuffer, config, modules...)
	if err != nil {
		t.Fatalf("failed to build app: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("MODKIT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
