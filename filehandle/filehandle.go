/*
File   : pitlang/filehandle/filehandle.go
Package: filehandle

FileHandle is a PitLang value wrapping an open OS file, backing the
handle-based std builtins (std.fopen, std.fread, std.fwrite, std.fseek,
std.ftell, std.fclose) that supplement the whole-file std.read_file and
std.write_file helpers. The handle keeps its own cursor, so scripts can
read or write a large file incrementally instead of holding the whole
content as one String.
*/
package filehandle

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/pitlang/object"
)

// FileKind is the value kind of an open file handle.
const FileKind object.Kind = "file"

// FileHandle wraps a native file handle plus the path it was opened with.
type FileHandle struct {
	Handle *os.File
	Path   string
	closed bool
}

func (f *FileHandle) Kind() object.Kind { return FileKind }
func (f *FileHandle) String() string    { return fmt.Sprintf("<file: %s>", f.Path) }
func (f *FileHandle) Inspect() string   { return f.String() }

// Open opens path with one of the script-visible modes:
// "r" read, "w" write/truncate, "a" append, "r+" read/write,
// "w+" read/write/truncate.
func Open(path string, mode string) (*FileHandle, error) {
	var flag int
	switch mode {
	case "r":
		flag = os.O_RDONLY
	case "w":
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a":
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case "r+":
		flag = os.O_RDWR
	case "w+":
		flag = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	default:
		return nil, fmt.Errorf("invalid file mode %q", mode)
	}
	handle, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return nil, err
	}
	return &FileHandle{Handle: handle, Path: path}, nil
}

func (f *FileHandle) ensureOpen() error {
	if f.closed {
		return fmt.Errorf("file already closed: %s", f.Path)
	}
	return nil
}

// Read reads up to count bytes from the current cursor. A negative count
// reads everything remaining. Reading at EOF returns an empty string, not
// an error.
func (f *FileHandle) Read(count int) (string, error) {
	if err := f.ensureOpen(); err != nil {
		return "", err
	}
	if count < 0 {
		data, err := io.ReadAll(f.Handle)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	buf := make([]byte, count)
	n, err := io.ReadFull(f.Handle, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// Write writes content at the current cursor and returns the byte count.
func (f *FileHandle) Write(content string) (int, error) {
	if err := f.ensureOpen(); err != nil {
		return 0, err
	}
	return f.Handle.WriteString(content)
}

// Seek moves the cursor to offset bytes from the start of the file and
// returns the new cursor position.
func (f *FileHandle) Seek(offset int64) (int64, error) {
	if err := f.ensureOpen(); err != nil {
		return 0, err
	}
	return f.Handle.Seek(offset, io.SeekStart)
}

// Tell returns the current cursor position.
func (f *FileHandle) Tell() (int64, error) {
	if err := f.ensureOpen(); err != nil {
		return 0, err
	}
	return f.Handle.Seek(0, io.SeekCurrent)
}

// Close closes the handle. Closing twice is an error.
func (f *FileHandle) Close() error {
	if err := f.ensureOpen(); err != nil {
		return err
	}
	f.closed = true
	return f.Handle.Close()
}
