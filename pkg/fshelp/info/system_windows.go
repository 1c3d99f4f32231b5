//go:build windows

package info

import (
	"os"
	"path/filepath"
)

func windowsDirectory() string {
	if root := os.Getenv("SystemRoot"); root != "" {
		return root
	}
	return `C:\Windows`
}

func adminToolsDirectory() string {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		return ""
	}
	return filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs", "Administrative Tools")
}
