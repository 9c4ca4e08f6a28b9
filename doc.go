// Package chanx implements a typed-by-convention, bounded,
// multi-producer/multi-consumer channel together with a multi-way
// Select primitive, built directly from mutexes, condition variables,
// and a private per-call counting semaphore rather than on top of
// Go's own built-in channels.
//
// A Channel (see New) carries opaque interface{} payloads through a
// fixed-capacity ring buffer. Send and Receive each take a blocking
// flag: blocking calls wait for room/data or for Close; non-blocking
// calls return WouldBlock immediately instead of suspending. Close is
// monotonic and wakes every blocked Send, Receive, and Select
// registered on the channel; it discards any values still buffered.
//
// Select (see Select) blocks on a heterogeneous slice of Cases — each
// naming a channel, a direction, and a payload slot — and completes
// exactly one of them; when more than one is ready at once, the
// lowest-indexed ready Case is the one completed.
//
// Directory layers a named registry on top of Channel for service-
// style wiring, and the internal/limiter package bounds how many
// goroutines may concurrently block inside Select when fanning a
// worker out across many channels.
package chanx
