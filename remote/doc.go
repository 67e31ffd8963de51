// Package remote carries Kruskal steps over HTTP and WebSocket.
//
// Server exposes:
//
//	GET  /                    health
//	POST /api/kruskal         full run in one response (LRU-cached)
//	POST /api/validate-graph  validation, ordered edges, connectivity
//	GET  /ws/kruskal          streamed run
//
// Stream protocol: the client sends one Request {edges, speed} after the
// upgrade. The server computes the run with kruskal.Engine and writes one
// Envelope per step, {type:"step", data:Step}, pausing base/speed between
// steps, then {type:"complete", data:Complete} and closes. Any failure is a
// single {type:"error", message} and the connection is closed; error is
// terminal.
//
// Relay is the client side and implements kruskal.StepSource, so a
// replay.Driver plays a remote run exactly like a local one. The transport
// is order-preserving; a StepIndex other than the expected next one is a
// terminal ErrOutOfOrder, there is no reordering buffer.
package remote
