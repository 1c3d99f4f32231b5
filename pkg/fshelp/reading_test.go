package fshelp_test

import (
	"errors"
	"io"
	"io/fs"
	"strings"

	"fshelp/pkg/fshelp"
)

func (s *HelperTestSuite) TestGetReader_Missing() {
	reader, ok, err := s.helper.GetReader(s.path("missing.txt"))

	s.Require().NoError(err)
	s.False(ok)
	s.Nil(reader)
}

func (s *HelperTestSuite) TestLineReader_Terminators() {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{name: "empty", content: "", expected: []string{}},
		{name: "single_line", content: "one", expected: []string{"one"}},
		{name: "trailing_newline", content: "one\n", expected: []string{"one"}},
		{name: "lf", content: "a\nb\nc", expected: []string{"a", "b", "c"}},
		{name: "crlf", content: "a\r\nb\r\n", expected: []string{"a", "b"}},
		{name: "lone_cr", content: "a\rb", expected: []string{"a", "b"}},
		{name: "blank_lines", content: "a\n\n\nb", expected: []string{"a", "", "", "b"}},
		{name: "only_newline", content: "\n", expected: []string{""}},
		{name: "unicode", content: "grüße\n日本", expected: []string{"grüße", "日本"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			path := s.path(tt.name + ".txt")
			s.writeRaw(path, tt.content)

			reader, ok, err := s.helper.GetReader(path)
			s.Require().NoError(err)
			s.Require().True(ok)
			defer reader.Close()

			lines := []string{}
			for {
				line, readErr := reader.ReadLine()
				if errors.Is(readErr, io.EOF) {
					break
				}
				s.Require().NoError(readErr)
				lines = append(lines, line)
			}

			s.Equal(tt.expected, lines)
			s.Equal(path, reader.Name())
		})
	}
}

func (s *HelperTestSuite) TestGetFileAsLines() {
	path := s.path("lines.txt")
	s.writeRaw(path, "first\nsecond\nthird\n")

	lines, err := s.helper.GetFileAsLines(path)

	s.Require().NoError(err)
	s.Equal([]string{"first", "second", "third"}, lines)
}

func (s *HelperTestSuite) TestGetFileAsLines_LongLine() {
	path := s.path("long.txt")
	long := strings.Repeat("x", 256*1024)
	s.writeRaw(path, long+"\r\nend")

	lines, err := s.helper.GetFileAsLines(path)

	s.Require().NoError(err)
	s.Require().Len(lines, 2)
	s.Len(lines[0], len(long))
	s.Equal("end", lines[1])
}

func (s *HelperTestSuite) TestGetFileAsLines_EmptyFile() {
	path := s.path("empty.txt")
	s.Require().NoError(s.helper.CreateFileWithoutStream(path))

	lines, err := s.helper.GetFileAsLines(path)

	s.Require().NoError(err)
	s.NotNil(lines)
	s.Empty(lines)
}

func (s *HelperTestSuite) TestGetFileAsLines_Missing() {
	path := s.path("gone.txt")

	lines, err := s.helper.GetFileAsLines(path)

	s.Require().Error(err)
	s.Nil(lines)
	s.ErrorIs(err, fshelp.ErrNotFound)
	s.ErrorIs(err, fs.ErrNotExist)

	var notFound *fshelp.NotFoundError
	s.Require().ErrorAs(err, &notFound)
	s.Equal("read", notFound.Op)
	s.Equal(path, notFound.Path)
}

func (s *HelperTestSuite) TestGetFileAsString_GluesLines() {
	path := s.path("glued.txt")
	s.writeRaw(path, "ab\ncd")

	text, err := s.helper.GetFileAsString(path)

	s.Require().NoError(err)
	s.Equal("abcd", text)
}

func (s *HelperTestSuite) TestGetFileAsStringFormatted() {
	path := s.path("formatted.txt")
	s.writeRaw(path, "ab\r\ncd\n")

	text, err := s.helper.GetFileAsStringFormatted(path)

	s.Require().NoError(err)
	s.Equal("ab\ncd", text)
}

func (s *HelperTestSuite) TestGetFileAsString_Missing() {
	_, err := s.helper.GetFileAsString(s.path("nope.txt"))
	s.ErrorIs(err, fshelp.ErrNotFound)

	_, err = s.helper.GetFileAsStringFormatted(s.path("nope.txt"))
	s.ErrorIs(err, fshelp.ErrNotFound)
}
