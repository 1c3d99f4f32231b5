//go:build !windows

package info

// Windows and Administrative Tools folders only exist on Windows.

func windowsDirectory() string {
	return ""
}

func adminToolsDirectory() string {
	return ""
}
