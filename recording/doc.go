// Package recording captures the mutating calls made on a
// gpures.ResourceContext so they can be inspected or replayed.
//
// # Architecture
//
// The package follows a command pattern with two components:
//
//   - Recorder: a gpures.ResourceContext that forwards every call to an
//     inner context and records mutating calls as typed commands
//   - Recording: an immutable snapshot of commands that can be played back
//     onto any other context
//
// Queries (GetResourceInfo, GetAssetResourceUntyped) are forwarded but not
// recorded.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(headless.New())
//
//	// Hand rec to the code under test in place of the real context.
//	renderGraph.Run(rec)
//
//	r := rec.FinishRecording()
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
// # Playback
//
// Handles are issued fresh on playback, so Playback returns the mapping
// from recorded handles to the handles created on the target:
//
//	target := headless.New()
//	remap := r.Playback(target)
//	newHandle := remap[oldHandle]
//
// Mapped buffers are replayed with the content the setup callback committed
// during recording. Resources created from inside a setup callback are
// recorded as their own commands, ahead of the mapped buffer itself.
package recording
