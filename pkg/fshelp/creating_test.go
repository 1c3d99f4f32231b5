package fshelp_test

import (
	"syscall"

	"github.com/spf13/afero"

	"fshelp/pkg/fshelp"
)

func (s *HelperTestSuite) TestCreateDirectory_Idempotent() {
	path := s.path("x", "y")

	for i := 0; i < 2; i++ {
		info, err := s.helper.CreateDirectory(path)
		s.Require().NoError(err)
		s.True(info.IsDir())
		s.True(s.helper.DirectoryExists(path))
	}
}

func (s *HelperTestSuite) TestCreateDirectory_FilePathResolvesToParent() {
	path := s.path("docs", "readme.md")
	s.Require().NoError(s.helper.CreateFileWithoutStream(path))

	info, err := s.helper.CreateDirectory(path)

	s.Require().NoError(err)
	s.True(info.IsDir())
	s.Equal("docs", info.Name())
	s.True(s.helper.FileExists(path), "the file must be left untouched")
}

func (s *HelperTestSuite) TestCreateFile_TruncatesExisting() {
	path := s.path("trunc.txt")
	s.writeRaw(path, "old content")

	file, err := s.helper.CreateFile(path)
	s.Require().NoError(err)
	s.Require().NoError(file.Close())

	s.Empty(s.readRaw(path))
}

func (s *HelperTestSuite) TestCreateFile_ReturnsWritableHandle() {
	path := s.path("new", "handle.txt")

	file, err := s.helper.CreateFile(path)
	s.Require().NoError(err)

	_, err = file.WriteString("via handle")
	s.Require().NoError(err)
	s.Require().NoError(file.Close())

	s.Equal("via handle", s.readRaw(path))
}

func (s *HelperTestSuite) TestCreateFileWithoutStream() {
	path := s.path("p", "q", "r.txt")

	s.Require().NoError(s.helper.CreateFileWithoutStream(path))

	s.True(s.helper.FileExists(path))
	s.Empty(s.readRaw(path))
}

func (s *HelperTestSuite) TestCreateFile_ReadOnlyFileSystem() {
	helper := fshelp.New(afero.NewReadOnlyFs(s.fs), s.logger)

	err := helper.CreateFileWithoutStream(s.path("denied.txt"))

	s.Require().Error(err)
	s.ErrorIs(err, syscall.EPERM)
	s.Contains(err.Error(), "failed to create file")
}
