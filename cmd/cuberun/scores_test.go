package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/platform/tui"
)

func TestCommandsRegisterConfigFlag(t *testing.T) {
	for _, name := range []string{"play", "serve", "scores", "config"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			if err != nil {
				t.Fatalf("command %q not found: %v", name, err)
			}
			if cmd.Flags().Lookup("config") == nil {
				t.Errorf("%s does not register --config", name)
			}
		})
	}
}

func TestServerConfigFromFlags(t *testing.T) {
	addr, hostKey, idle, dbPath, fps, seed := flagSSHAddr, flagHostKey, flagIdleTimeout, flagDBPath, flagFPS, flagSeed
	t.Cleanup(func() {
		flagSSHAddr, flagHostKey, flagIdleTimeout, flagDBPath, flagFPS, flagSeed = addr, hostKey, idle, dbPath, fps, seed
	})

	defaults := tui.DefaultSSHServerConfig()
	runnerCfg := config.DefaultRunnerConfig()

	flagSSHAddr, flagHostKey, flagIdleTimeout, flagDBPath, flagFPS, flagSeed = "", "", 0, "", 0, 0
	cfg := serverConfig(runnerCfg)
	if cfg.Address != defaults.Address || cfg.IdleTimeout != defaults.IdleTimeout || cfg.TickRate != defaults.TickRate {
		t.Errorf("unset flags should keep defaults, got %+v", cfg)
	}

	flagSSHAddr, flagHostKey, flagIdleTimeout, flagDBPath, flagFPS, flagSeed = ":2222", "key", 5, "/tmp/s.db", 30, 7
	cfg = serverConfig(runnerCfg)
	if cfg.Address != ":2222" {
		t.Errorf("Address = %q, expected :2222", cfg.Address)
	}
	if cfg.HostKeyPath != "key" || cfg.DBPath != "/tmp/s.db" {
		t.Errorf("paths = %q, %q", cfg.HostKeyPath, cfg.DBPath)
	}
	if cfg.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 5m", cfg.IdleTimeout)
	}
	if cfg.TickRate != 30 || cfg.Seed != 7 {
		t.Errorf("TickRate = %d, Seed = %d", cfg.TickRate, cfg.Seed)
	}
}
