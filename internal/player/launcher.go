package player

import (
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Launcher hands stream URLs to an external audio player
type Launcher struct {
	command string   // configured player command, empty for auto-detection
	args    []string // additional arguments for the player
	logger  *slog.Logger
}

// playerConfig defines how a known player is invoked for audio-only playback
type playerConfig struct {
	baseArgs []string // arguments always passed before the URL
}

// players registry - single source of truth for known player invocations
var players = map[string]playerConfig{
	"mpv": {
		baseArgs: []string{"--no-video", "--force-window=no"},
	},
	"vlc": {
		baseArgs: []string{"--intf", "dummy", "--play-and-exit"},
	},
	"ffplay": {
		baseArgs: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"},
	},
}

// candidatePlayers defines the preferred player order for each platform
var candidatePlayers = map[string][]string{
	"darwin":  {"mpv", "vlc", "ffplay"},
	"linux":   {"mpv", "vlc", "ffplay"},
	"windows": {"mpv", "vlc", "ffplay"},
}

// NewLauncher creates a new Launcher
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command: command,
		args:    args,
		logger:  logger,
	}
}

// Launch starts playback of url in a detached player process
func (l *Launcher) Launch(url string) error {
	if url == "" {
		return fmt.Errorf("no stream URL to play")
	}

	command := l.command
	if command == "" {
		detected, err := l.detectPlayer()
		if err != nil {
			return err
		}
		command = detected
	}

	args := l.playerArgs(command)
	args = append(args, l.args...)
	args = append(args, url)

	l.logger.Info("launching player", "command", command)

	cmd := exec.Command(command, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", command, err)
	}

	// Reap the process in the background so it doesn't zombie
	go func() {
		if err := cmd.Wait(); err != nil {
			l.logger.Debug("player exited", "command", command, "error", err)
		}
	}()

	return nil
}

// playerArgs resolves the audio-only base arguments for a command
func (l *Launcher) playerArgs(command string) []string {
	base := filepath.Base(command)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ToLower(base)

	if cfg, ok := players[base]; ok {
		return append([]string(nil), cfg.baseArgs...)
	}
	return nil
}

// detectPlayer finds the first available player for the current platform
func (l *Launcher) detectPlayer() (string, error) {
	candidates := candidatePlayers[runtime.GOOS]
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			l.logger.Debug("detected player", "player", name, "path", path)
			return name, nil
		}
	}
	return "", fmt.Errorf("no supported audio player found (tried %s)", strings.Join(candidates, ", "))
}
