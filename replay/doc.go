// Package replay paces a kruskal.StepSource for step-by-step playback.
//
// A Driver pulls one Step per tick from its source and forwards it to the
// registered Observers. The tick interval is base / speed, so speed 2 plays
// twice as fast as speed 1.
//
// Lifecycle
//
//	Idle ──Play──► Playing ──(EOF)──► Done
//	  ▲              │  ▲                 │
//	  │            Pause Resume           │
//	  │              ▼  │                 │
//	  └──Reset───── Paused ──StepOnce──► (next step)
//	                                Failed ◄── source error
//
//   - Pause keeps the position; Resume continues at the exact next StepIndex.
//   - StepOnce advances by one step while Idle or Paused.
//   - Reset closes the current source and installs a new one. Any timer tick
//     or in-flight fetch belonging to the previous run carries a stale run
//     number and is discarded before it can touch state or observers.
//
// Observers see, for every step, OnExamine followed by OnStep, then exactly
// one of OnComplete (after io.EOF) or OnError (any other source error).
// They are called from the driver goroutine without the driver lock held, in
// strictly increasing StepIndex order.
package replay
