package generator

import (
	"errors"
	"fmt"
)

// ErrNoRecords is returned when no source yields a record with a tool name.
var ErrNoRecords = errors.New("no tool records loaded")

// CollisionError is returned in strict mode when two tools share a page file.
type CollisionError struct {
	File   string
	First  string
	Second string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("tools %q and %q both map to %s\n💡 Rename one of them, or run without --strict to keep the last one", e.First, e.Second, e.File)
}
