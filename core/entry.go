package core

import (
	"runtime"
	"strings"
	"sync"
)

// Entry represents a single log event.
//
// There is deliberately no timestamp field: the zone formatter stamps
// wall-clock time at render time, and entries are rendered immediately
// after creation, so a stored time would never be honored.
type Entry struct {
	Level Level
	// Target is a free-form categorization string chosen by the
	// emitter, e.g. a subsystem name. Empty means no target.
	Target string
	// ModulePath is the import path of the package that emitted the
	// event. Empty means absent.
	ModulePath string
	Message    string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves a zeroed Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	*e = Entry{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.Target = ""
	e.ModulePath = ""
	entryPool.Put(e)
}

// CallerPackage returns the import path of the package that called
// skip frames up the stack, or "" if it cannot be resolved. It is the
// source of Entry.ModulePath for loggers that enable module paths.
func CallerPackage(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return PackageForPC(pc)
}

// PackageForPC returns the import path of the package containing the
// function at pc, or "" if it cannot be resolved.
func PackageForPC(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	return packageFromFunc(fn.Name())
}

// packageFromFunc trims the function part off a runtime function name,
// e.g. "github.com/a/b/pkg.(*T).Method" -> "github.com/a/b/pkg".
func packageFromFunc(name string) string {
	slash := strings.LastIndexByte(name, '/')
	dot := strings.IndexByte(name[slash+1:], '.')
	if dot < 0 {
		return name
	}
	return name[:slash+1+dot]
}
