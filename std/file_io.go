/*
File   : pitlang/std/file_io.go
Package: std

The file builtins. read_file and write_file are the whole-file pair from
the core contract: read_file returns Null on any error, write_file a Bool.
The fopen family wraps a filehandle.FileHandle for incremental I/O; fopen
itself follows read_file's Null-on-failure convention, while misusing a
handle (wrong argument type, handle already closed) is an IOError.
*/
package std

import (
	"os"

	"github.com/akashmaji946/pitlang/filehandle"
	"github.com/akashmaji946/pitlang/object"
)

func (h *Host) readFile(args []object.Value) object.Value {
	if len(args) != 1 {
		return arityError("std.read_file", "1", len(args))
	}
	path, err := stringArg("std.read_file", args, 0)
	if err != nil {
		return err
	}
	content, readErr := os.ReadFile(path.Value)
	if readErr != nil {
		return object.NullValue
	}
	return &object.String{Value: string(content)}
}

func (h *Host) writeFile(args []object.Value) object.Value {
	if len(args) != 2 {
		return arityError("std.write_file", "2", len(args))
	}
	path, err := stringArg("std.write_file", args, 0)
	if err != nil {
		return err
	}
	content, err := stringArg("std.write_file", args, 1)
	if err != nil {
		return err
	}
	writeErr := os.WriteFile(path.Value, []byte(content.Value), 0644)
	return object.BoolOf(writeErr == nil)
}

func fileArg(name string, args []object.Value, i int) (*filehandle.FileHandle, *object.RuntimeError) {
	f, ok := args[i].(*filehandle.FileHandle)
	if !ok {
		return nil, newError(object.IOError, "%s: argument %d must be a file handle, got %s", name, i+1, args[i].Kind())
	}
	return f, nil
}

func (h *Host) fopen(args []object.Value) object.Value {
	if len(args) != 2 {
		return arityError("std.fopen", "2", len(args))
	}
	path, err := stringArg("std.fopen", args, 0)
	if err != nil {
		return err
	}
	mode, err := stringArg("std.fopen", args, 1)
	if err != nil {
		return err
	}
	handle, openErr := filehandle.Open(path.Value, mode.Value)
	if openErr != nil {
		return object.NullValue
	}
	return handle
}

func (h *Host) fclose(args []object.Value) object.Value {
	if len(args) != 1 {
		return arityError("std.fclose", "1", len(args))
	}
	f, err := fileArg("std.fclose", args, 0)
	if err != nil {
		return err
	}
	if closeErr := f.Close(); closeErr != nil {
		return newError(object.IOError, "std.fclose: %v", closeErr)
	}
	return object.NullValue
}

func (h *Host) fread(args []object.Value) object.Value {
	if len(args) != 2 {
		return arityError("std.fread", "2", len(args))
	}
	f, err := fileArg("std.fread", args, 0)
	if err != nil {
		return err
	}
	count, err := numberArg("std.fread", args, 1)
	if err != nil {
		return err
	}
	content, readErr := f.Read(int(count.Value))
	if readErr != nil {
		return newError(object.IOError, "std.fread: %v", readErr)
	}
	return &object.String{Value: content}
}

func (h *Host) fwrite(args []object.Value) object.Value {
	if len(args) != 2 {
		return arityError("std.fwrite", "2", len(args))
	}
	f, err := fileArg("std.fwrite", args, 0)
	if err != nil {
		return err
	}
	content, err := stringArg("std.fwrite", args, 1)
	if err != nil {
		return err
	}
	written, writeErr := f.Write(content.Value)
	if writeErr != nil {
		return newError(object.IOError, "std.fwrite: %v", writeErr)
	}
	return &object.Number{Value: float64(written)}
}

func (h *Host) fseek(args []object.Value) object.Value {
	if len(args) != 2 {
		return arityError("std.fseek", "2", len(args))
	}
	f, err := fileArg("std.fseek", args, 0)
	if err != nil {
		return err
	}
	offset, err := numberArg("std.fseek", args, 1)
	if err != nil {
		return err
	}
	pos, seekErr := f.Seek(int64(offset.Value))
	if seekErr != nil {
		return newError(object.IOError, "std.fseek: %v", seekErr)
	}
	return &object.Number{Value: float64(pos)}
}

func (h *Host) ftell(args []object.Value) object.Value {
	if len(args) != 1 {
		return arityError("std.ftell", "1", len(args))
	}
	f, err := fileArg("std.ftell", args, 0)
	if err != nil {
		return err
	}
	pos, tellErr := f.Tell()
	if tellErr != nil {
		return newError(object.IOError, "std.ftell: %v", tellErr)
	}
	return &object.Number{Value: float64(pos)}
}
