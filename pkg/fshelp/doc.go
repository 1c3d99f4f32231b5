// Package fshelp provides convenience helpers over a file system.
//
// Key functionality:
//   - Opening: OpenOrCreate, TryOpen
//   - Creating: CreateDirectory, CreateFile, CreateFileWithoutStream
//   - Reading: GetReader, GetFileAsLines, GetFileAsString, GetFileAsStringFormatted
//   - Writing: GetWriter, GetWriterWithAppend, OverwriteFile, AppendToFile
//   - Existing: FileExists, DirectoryExists
//   - Pathing: ParentDirectory, FileName, Extension, AbsolutePath, PathRoot and temp paths
//
// Queries that depend on a file being present report absence through a boolean
// result rather than an error. Operations that need the file to be present return
// a *NotFoundError when it is not.
//
// Subpackages:
//   - info: well-known OS directories resolved once at start-up
package fshelp
