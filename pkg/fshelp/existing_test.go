package fshelp_test

func (s *HelperTestSuite) TestFileExists() {
	file := s.path("exists.txt")
	s.writeRaw(file, "")

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "existing_file", path: file, expected: true},
		{name: "directory", path: s.root, expected: false},
		{name: "missing_file", path: s.path("missing.txt"), expected: false},
		{name: "missing_parent_chain", path: s.path("no", "such", "dir", "f.txt"), expected: false},
		{name: "empty_path", path: "", expected: false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.expected, s.helper.FileExists(tt.path))
		})
	}
}

func (s *HelperTestSuite) TestDirectoryExists() {
	file := s.path("sub", "exists.txt")
	s.Require().NoError(s.helper.CreateFileWithoutStream(file))

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "existing_directory", path: s.path("sub"), expected: true},
		{name: "existing_file_resolves_to_parent", path: file, expected: true},
		{name: "missing_anything", path: s.path("ghost"), expected: false},
		{name: "missing_file_in_missing_dir", path: s.path("ghost", "f.txt"), expected: false},
		{name: "empty_path", path: "", expected: false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.expected, s.helper.DirectoryExists(tt.path))
		})
	}
}
