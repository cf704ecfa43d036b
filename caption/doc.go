// Package caption turns per-session transcription streams into fixed-size
// caption blocks.
//
// A Registry owns every live Session. Each Session keeps a bounded transcript
// history plus the latest partial result, re-wraps the combined text to the
// configured width and line count on every event, throttles non-final
// renders, and blanks itself after a period without speech. Rendered
// blocks are handed to a display.Sink through a per-session outbox so a slow
// sink never stalls event processing.
//
//	reg, err := caption.NewRegistry(cfg, display.NewTerminalSink(os.Stdout))
//	sess, err := reg.StartSession(ctx, "room-1", "alice", settings.Snapshot{LineWidth: "medium"})
//	sess.HandleTranscription(transcription.Partial("hello wor", "en-US"))
//	sess.HandleTranscription(transcription.Final("hello world", "en-US"))
//	reg.StopSession(ctx, "room-1", "alice", "call ended")
package caption
