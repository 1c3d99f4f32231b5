// Package info resolves well-known operating system directories.
//
// Resolve is meant to be called once at start-up. The Directories value it
// returns is passed to whatever needs it; nothing in this package is cached.
package info

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Directories holds well-known directories for the current user and process.
// Directories the platform does not define are empty.
type Directories struct {
	Desktop    string `yaml:"desktop"    json:"desktop"    mapstructure:"desktop"`
	Windows    string `yaml:"windows"    json:"windows"    mapstructure:"windows"`
	AdminTools string `yaml:"adminTools" json:"adminTools" mapstructure:"admintools"`
	Pictures   string `yaml:"pictures"   json:"pictures"   mapstructure:"pictures"`
	Music      string `yaml:"music"      json:"music"      mapstructure:"music"`
	Documents  string `yaml:"documents"  json:"documents"  mapstructure:"documents"`
	Videos     string `yaml:"videos"     json:"videos"     mapstructure:"videos"`

	// Program is the display name of the running executable.
	Program string `yaml:"program" json:"program" mapstructure:"program"`
	// ProgramDir is the directory holding the running executable.
	ProgramDir string `yaml:"programDir" json:"programDir" mapstructure:"programdir"`
}

// Resolve looks up every directory and applies the non-empty fields of overrides
// on top of the resolved values.
func Resolve(overrides Directories) (Directories, error) {
	xdg.Reload()

	dirs := Directories{
		Desktop:    xdg.UserDirs.Desktop,
		Windows:    windowsDirectory(),
		AdminTools: adminToolsDirectory(),
		Pictures:   xdg.UserDirs.Pictures,
		Music:      xdg.UserDirs.Music,
		Documents:  xdg.UserDirs.Documents,
		Videos:     xdg.UserDirs.Videos,
	}

	executable, err := os.Executable()
	if err != nil {
		return Directories{}, fmt.Errorf("failed to resolve running executable: %w", err)
	}
	dirs.Program = filepath.Base(executable)
	dirs.ProgramDir = filepath.Dir(executable)

	return dirs.merge(overrides), nil
}

// Fields returns the directories as ordered name/value pairs.
func (d Directories) Fields() [][2]string {
	return [][2]string{
		{"desktop", d.Desktop},
		{"windows", d.Windows},
		{"adminTools", d.AdminTools},
		{"pictures", d.Pictures},
		{"music", d.Music},
		{"documents", d.Documents},
		{"videos", d.Videos},
		{"program", d.Program},
		{"programDir", d.ProgramDir},
	}
}

func (d Directories) merge(overrides Directories) Directories {
	pick := func(resolved, override string) string {
		if override != "" {
			return override
		}
		return resolved
	}

	return Directories{
		Desktop:    pick(d.Desktop, overrides.Desktop),
		Windows:    pick(d.Windows, overrides.Windows),
		AdminTools: pick(d.AdminTools, overrides.AdminTools),
		Pictures:   pick(d.Pictures, overrides.Pictures),
		Music:      pick(d.Music, overrides.Music),
		Documents:  pick(d.Documents, overrides.Documents),
		Videos:     pick(d.Videos, overrides.Videos),
		Program:    pick(d.Program, overrides.Program),
		ProgramDir: pick(d.ProgramDir, overrides.ProgramDir),
	}
}
