package platform

import (
	"fmt"
	"os"
	"strings"
)

// SetAutostart registers or removes the current executable as a
// login-time autostart entry for the user. The mechanism is
// OS-specific: a .desktop entry on Linux, a LaunchAgent plist on
// macOS, a registry Run value on Windows.
func SetAutostart(appName string, enabled bool) error {
	if appName == "" {
		return fmt.Errorf("autostart: app name is empty")
	}
	if !enabled {
		return disableAutostart(appName)
	}

	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("autostart: resolve executable: %w", err)
	}
	return enableAutostart(appName, execPath)
}

func autostartSlug(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	if name == "" {
		name = "pomotick"
	}
	return strings.ReplaceAll(name, " ", "-")
}
