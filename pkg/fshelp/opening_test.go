package fshelp_test

import (
	"io"
	"syscall"

	"github.com/spf13/afero"

	"fshelp/pkg/fshelp"
)

func (s *HelperTestSuite) TestTryOpen_Missing() {
	file, ok, err := s.helper.TryOpen(s.path("missing.txt"))

	s.Require().NoError(err)
	s.False(ok)
	s.Nil(file)
}

func (s *HelperTestSuite) TestTryOpen_Existing() {
	path := s.path("present.txt")
	s.writeRaw(path, "hello")

	file, ok, err := s.helper.TryOpen(path)
	s.Require().NoError(err)
	s.Require().True(ok)
	defer file.Close()

	data, err := io.ReadAll(file)
	s.Require().NoError(err)
	s.Equal("hello", string(data))
}

func (s *HelperTestSuite) TestTryOpen_Directory() {
	file, ok, err := s.helper.TryOpen(s.root)

	s.Require().NoError(err)
	s.False(ok, "directories are not files")
	s.Nil(file)
}

func (s *HelperTestSuite) TestOpenOrCreate_CreatesNestedFile() {
	tests := []struct {
		name string
		elem []string
	}{
		{name: "depth_one", elem: []string{"a.txt"}},
		{name: "depth_three", elem: []string{"a", "b", "c.txt"}},
		{name: "depth_six", elem: []string{"a", "b", "c", "d", "e", "f.txt"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			path := s.path(tt.elem...)

			file, err := s.helper.OpenOrCreate(path)
			s.Require().NoError(err)
			s.Require().NotNil(file)
			s.Require().NoError(file.Close())

			s.True(s.helper.FileExists(path))
			s.True(s.helper.DirectoryExists(fshelp.ParentDirectory(path)))
		})
	}
}

func (s *HelperTestSuite) TestOpenOrCreate_KeepsExistingContent() {
	path := s.path("keep.txt")
	s.writeRaw(path, "existing")

	file, err := s.helper.OpenOrCreate(path)
	s.Require().NoError(err)
	s.Require().NoError(file.Close())

	s.Equal("existing", s.readRaw(path))
}

func (s *HelperTestSuite) TestOpenOrCreate_ReadOnlyFileSystem() {
	helper := fshelp.New(afero.NewReadOnlyFs(s.fs), s.logger)

	file, err := helper.OpenOrCreate(s.path("new", "file.txt"))

	s.Require().Error(err)
	s.Nil(file)
	s.ErrorIs(err, syscall.EPERM)
	s.Contains(err.Error(), "failed to create directory")
}
