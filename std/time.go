/*
File   : pitlang/std/time.go
Package: std

The time builtins: std.time() is fractional seconds since the Unix epoch,
std.time_string() a human-readable local timestamp.
*/
package std

import (
	"time"

	"github.com/akashmaji946/pitlang/object"
)

func (h *Host) timeNow(args []object.Value) object.Value {
	if len(args) != 0 {
		return arityError("std.time", "0", len(args))
	}
	return &object.Number{Value: float64(time.Now().UnixNano()) / float64(time.Second)}
}

func (h *Host) timeString(args []object.Value) object.Value {
	if len(args) != 0 {
		return arityError("std.time_string", "0", len(args))
	}
	return &object.String{Value: time.Now().Format("2006-01-02 15:04:05")}
}
