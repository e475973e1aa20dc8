package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/config"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/games/eyespy"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeConfig string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the EyeSpy SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a mode picker and a
difficulty picker. Sessions share nothing but the game config file.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.eyespy/host_key

Examples:
  eyespy serve                           # Listen on :23234 with auto-generated key
  eyespy serve --ssh :2222               # Listen on port 2222
  eyespy serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	if _, err := config.LoadEyeSpy(flagServeConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	eyespy.SetConfigPath(flagServeConfig)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting EyeSpy SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
