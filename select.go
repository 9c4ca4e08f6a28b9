package chanx

import "github.com/gopherlabs/chanx/internal/token"

// Direction distinguishes a send case from a receive case in a Select
// call.
type Direction int

const (
	// SendDir marks a Case as a send: Value is transmitted.
	SendDir Direction = iota
	// RecvDir marks a Case as a receive: Dest receives the value.
	RecvDir
)

func (d Direction) String() string {
	if d == SendDir {
		return "send"
	}
	return "recv"
}

// Case is one entry of a Select call: a (channel, direction,
// payload-slot) triple, matching spec.md §3's select request shape.
type Case struct {
	Channel *Channel
	Dir     Direction
	Value   any  // transmitted when Dir == SendDir
	Dest    *any // written on success when Dir == RecvDir
}

// Select blocks on a heterogeneous set of pending send and receive
// operations across possibly-different channels and completes exactly
// one, returning its status and which entry was chosen.
//
// Select runs the three-phase protocol from spec.md §4.2:
//
//  1. Registration — a private wakeup token is inserted into the
//     relevant registry of every case's channel, deduplicated by
//     pointer identity even across repeated (channel, direction)
//     pairs.
//  2. Probe — entries are tried non-blocking in index order until one
//     completes (Success or any non-WouldBlock status); if every entry
//     yields WouldBlock, Select waits on its token and re-probes.
//  3. Deregistration — the token is removed from every registry it was
//     inserted into, then discarded.
//
// Registration must happen before the first probe: if an entry became
// ready between a pre-registration probe and a later wait, the wakeup
// would be missed. Deregistration must be exhaustive: the token's
// storage disappears when Select returns, and any leftover registry
// entry would be a use-after-free in spirit (a dangling reference a
// future Post would dereference).
func Select(cases []Case) (Status, int, error) {
	if len(cases) == 0 {
		return OtherError, -1, statusError("select", OtherError, -1)
	}
	for i, cs := range cases {
		if cs.Channel == nil {
			return OtherError, i, statusError("select", OtherError, i)
		}
	}

	tok := token.New()

	// Phase 1: registration.
	for _, cs := range cases {
		if cs.Dir == SendDir {
			cs.Channel.registerSend(tok)
		} else {
			cs.Channel.registerRecv(tok)
		}
	}

	var (
		status Status
		index  int
	)

	// Phase 2: probe, then wait, then re-probe.
probe:
	for {
		for i, cs := range cases {
			switch cs.Dir {
			case SendDir:
				st, _ := cs.Channel.Send(cs.Value, false)
				if st != WouldBlock {
					status, index = st, i
					break probe
				}
			case RecvDir:
				v, st, _ := cs.Channel.Receive(false)
				if st != WouldBlock {
					if st == Success && cs.Dest != nil {
						*cs.Dest = v
					}
					status, index = st, i
					break probe
				}
			}
		}
		tok.Wait()
	}

	// Phase 3: deregistration, exhaustive and unconditional.
	for _, cs := range cases {
		if cs.Dir == SendDir {
			cs.Channel.deregisterSend(tok)
		} else {
			cs.Channel.deregisterRecv(tok)
		}
	}

	debugLogf("select: entry %d completed with status %s", index, status)
	return status, index, statusError("select", status, index)
}
