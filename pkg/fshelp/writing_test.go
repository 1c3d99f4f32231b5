package fshelp_test

import (
	"syscall"

	"github.com/spf13/afero"

	"fshelp/pkg/fshelp"
)

func (s *HelperTestSuite) TestGetWriter_Missing() {
	writer, ok, err := s.helper.GetWriter(s.path("missing.txt"))
	s.Require().NoError(err)
	s.False(ok)
	s.Nil(writer)

	for _, appendMode := range []bool{false, true} {
		writer, ok, err = s.helper.GetWriterWithAppend(s.path("missing.txt"), appendMode)
		s.Require().NoError(err)
		s.False(ok)
		s.Nil(writer)
	}

	s.False(s.helper.FileExists(s.path("missing.txt")), "writers must not create files")
}

func (s *HelperTestSuite) TestGetWriter_OverwritesInPlace() {
	path := s.path("inplace.txt")
	s.writeRaw(path, "abcdef")

	writer, ok, err := s.helper.GetWriter(path)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Require().NoError(writer.Write("XY"))
	s.Require().NoError(writer.Close())

	s.Equal("XYcdef", s.readRaw(path))
}

func (s *HelperTestSuite) TestGetWriterWithAppend_Modes() {
	tests := []struct {
		name       string
		appendMode bool
		expected   string
	}{
		{name: "truncate", appendMode: false, expected: "new"},
		{name: "append", appendMode: true, expected: "oldnew"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			path := s.path(tt.name + ".txt")
			s.writeRaw(path, "old")

			writer, ok, err := s.helper.GetWriterWithAppend(path, tt.appendMode)
			s.Require().NoError(err)
			s.Require().True(ok)
			s.Equal(path, writer.Name())
			s.Require().NoError(writer.Write("new"))
			s.Require().NoError(writer.Close())

			s.Equal(tt.expected, s.readRaw(path))
		})
	}
}

func (s *HelperTestSuite) TestOverwriteFile_RoundTrip() {
	path := s.path("round.txt")
	s.Require().NoError(s.helper.CreateFileWithoutStream(path))

	s.Require().NoError(s.helper.OverwriteFile(path, "single line"))
	text, err := s.helper.GetFileAsStringFormatted(path)
	s.Require().NoError(err)
	s.Equal("single line", text)

	s.Require().NoError(s.helper.OverwriteFile(path, "one\ntwo\nthree"))
	lines, err := s.helper.GetFileAsLines(path)
	s.Require().NoError(err)
	s.Equal([]string{"one", "two", "three"}, lines)
}

func (s *HelperTestSuite) TestOverwriteFile_ReplacesLongerContent() {
	path := s.path("shrink.txt")
	s.writeRaw(path, "a much longer previous content")

	s.Require().NoError(s.helper.OverwriteFile(path, "short"))

	s.Equal("short", s.readRaw(path))
}

func (s *HelperTestSuite) TestAppendToFile() {
	path := s.path("append.txt")
	s.Require().NoError(s.helper.CreateFileWithoutStream(path))

	s.Require().NoError(s.helper.AppendToFile(path, "x"))
	s.Require().NoError(s.helper.AppendToFile(path, "y"))

	s.Equal("xy", s.readRaw(path))
}

func (s *HelperTestSuite) TestWrite_MissingFile() {
	tests := []struct {
		name  string
		op    string
		write func(path string) error
	}{
		{name: "overwrite", op: "overwrite", write: func(path string) error { return s.helper.OverwriteFile(path, "x") }},
		{name: "append", op: "append", write: func(path string) error { return s.helper.AppendToFile(path, "x") }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			path := s.path("absent", tt.name+".txt")

			err := tt.write(path)

			var notFound *fshelp.NotFoundError
			s.Require().ErrorAs(err, &notFound)
			s.Equal(tt.op, notFound.Op)
			s.Equal(tt.op+" "+path+": file does not exist", err.Error())
			s.False(s.helper.FileExists(path))
		})
	}
}

func (s *HelperTestSuite) TestOverwriteFile_ReadOnlyFileSystem() {
	path := s.path("locked.txt")
	s.writeRaw(path, "locked")
	helper := fshelp.New(afero.NewReadOnlyFs(s.fs), s.logger)

	err := helper.OverwriteFile(path, "changed")

	s.Require().Error(err)
	s.ErrorIs(err, syscall.EPERM)
	s.Equal("locked", s.readRaw(path))
}
