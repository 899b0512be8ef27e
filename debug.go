/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code this file was
 * adapted from. I have placed the source code in this file in the public
 * domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package gqlast

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/krotik/gqlast/internal/textutil"
)

/*
Tracer receives one line per grammar procedure the Parser enters, indented
by nesting depth. It costs nothing when a Parser has no Tracer set: every
call site guards the write behind a nil check before formatting anything.
*/
type Tracer struct {
	Out       io.Writer
	runID     string
	haveRunID bool
}

// runID is generated lazily, on the first trace line of a Parse call,
// so constructing an unused Tracer never touches the uuid package.
func (t *Tracer) id() string {
	if !t.haveRunID {
		t.runID = uuid.NewString()
		t.haveRunID = true
	}
	return t.runID
}

func (t *Tracer) enter(depth int, procedure string, tok Token) {
	if t == nil || t.Out == nil {
		return
	}
	indent := textutil.GenerateRollingString("  ", depth*2)
	fmt.Fprintf(t.Out, "[%s] %s%s at %s\n", t.id(), indent, procedure, tok)
}

func (t *Tracer) reset() {
	if t == nil {
		return
	}
	t.haveRunID = false
}
