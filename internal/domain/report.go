package domain

// PathReport collects every helper answer about a single path.
// Fields the helpers report as absent are left empty.
type PathReport struct {
	Path          string `yaml:"path" json:"path"`
	Parent        string `yaml:"parent" json:"parent"`
	FileExists    bool   `yaml:"fileExists" json:"fileExists"`
	DirExists     bool   `yaml:"dirExists" json:"dirExists"`
	Name          string `yaml:"name,omitempty" json:"name,omitempty"`
	Extension     string `yaml:"extension,omitempty" json:"extension,omitempty"`
	Stem          string `yaml:"nameWithoutExtension,omitempty" json:"nameWithoutExtension,omitempty"`
	AbsolutePath  string `yaml:"absolutePath,omitempty" json:"absolutePath,omitempty"`
	Root          string `yaml:"root,omitempty" json:"root,omitempty"`
	Size          int64  `yaml:"size,omitempty" json:"size,omitempty"`
	SizeHumanized string `yaml:"sizeHumanized,omitempty" json:"sizeHumanized,omitempty"`
}
