package commands

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/gerunddev/vimwiki/internal/styles"
)

const serviceName = "vimwiki-watch"

// ServiceFile returns where the user service running "vimwiki watch" is
// installed on goos, and its contents
func ServiceFile(goos, home, execPath string) (string, string, error) {
	switch goos {
	case "darwin":
		path := filepath.Join(home, "Library", "LaunchAgents", "com."+serviceName+".plist")
		content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>com.%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
		<string>watch</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>KeepAlive</key>
	<true/>
	<key>StandardOutPath</key>
	<string>/tmp/%s.out.log</string>
	<key>StandardErrorPath</key>
	<string>/tmp/%s.err.log</string>
</dict>
</plist>
`, serviceName, execPath, serviceName, serviceName)
		return path, content, nil

	case "linux":
		path := filepath.Join(home, ".config", "systemd", "user", serviceName+".service")
		content := fmt.Sprintf(`[Unit]
Description=Vimwiki - keep wiki pages parsed as they change

[Service]
Type=simple
ExecStart=%s watch
Restart=always
RestartSec=10

[Install]
WantedBy=default.target
`, execPath)
		return path, content, nil
	}

	return "", "", fmt.Errorf("unsupported operating system: %s", goos)
}

// Install writes a user service that runs the watcher at login
func Install() {
	fmt.Println(styles.TitleStyle.Render("Vimwiki Install"))
	fmt.Println()

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to get home directory: " + err.Error()))
		os.Exit(1)
	}

	execPath, err := os.Executable()
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to get executable path: " + err.Error()))
		os.Exit(1)
	}

	path, content, err := ServiceFile(runtime.GOOS, home, execPath)
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
		fmt.Println("Supported platforms: macOS (darwin), Linux")
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to create service directory: " + err.Error()))
		os.Exit(1)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to write service file: " + err.Error()))
		os.Exit(1)
	}

	fmt.Println(styles.SuccessStyle.Render("✓ Service file created: " + path))
	fmt.Println()
	fmt.Println("To enable the service:")
	if runtime.GOOS == "darwin" {
		fmt.Println(styles.DimStyle.Render("  launchctl load " + path))
		return
	}
	fmt.Println(styles.DimStyle.Render("  systemctl --user daemon-reload"))
	fmt.Println(styles.DimStyle.Render("  systemctl --user enable --now " + serviceName + ".service"))
}

// Uninstall stops the watcher service and removes its file
func Uninstall() {
	fmt.Println(styles.TitleStyle.Render("Vimwiki Uninstall"))
	fmt.Println()

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to get home directory: " + err.Error()))
		os.Exit(1)
	}

	path, _, err := ServiceFile(runtime.GOOS, home, "")
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
		os.Exit(1)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println(styles.WarningStyle.Render("⚠ Service file not found: " + path))
		fmt.Println("Nothing to uninstall.")
		return
	}

	// Stop the service first, ignoring errors if it is not loaded
	var stops [][]string
	if runtime.GOOS == "darwin" {
		stops = [][]string{{"launchctl", "unload", path}}
	} else {
		stops = [][]string{
			{"systemctl", "--user", "stop", serviceName + ".service"},
			{"systemctl", "--user", "disable", serviceName + ".service"},
		}
	}
	for _, cmd := range stops {
		if err := exec.Command(cmd[0], cmd[1:]...).Run(); err != nil {
			fmt.Println(styles.WarningStyle.Render("⚠ Could not run " + cmd[0] + ": " + err.Error()))
		}
	}

	if err := os.Remove(path); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to remove service file: " + err.Error()))
		os.Exit(1)
	}

	if runtime.GOOS == "linux" {
		if err := exec.Command("systemctl", "--user", "daemon-reload").Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to reload systemd daemon: %v\n", err)
		}
	}

	fmt.Println(styles.SuccessStyle.Render("✓ Service file removed: " + path))
}
