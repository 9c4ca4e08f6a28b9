package chanx

import (
	"log"
	"os"
)

// debugChanx gates verbose per-operation logging, the same shape as
// the teacher's own debugChan/debugSelect booleans in
// runtime/chan.go and runtime/select.go. Unlike the runtime, chanx
// runs as ordinary user code and so logs through the standard log
// package instead of the runtime's bare print/println.
var debugChanx = os.Getenv("CHANX_DEBUG") != ""

func debugLogf(format string, args ...any) {
	if !debugChanx {
		return
	}
	log.Printf("chanx: "+format, args...)
}
