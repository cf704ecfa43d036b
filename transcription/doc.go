// Package transcription defines the inbound events a speech recognizer
// delivers to a caption session, and the Source interface that produces them.
//
// Recognizers emit a stream of partial (interim) results for speech still in
// progress, followed by a final result once an utterance is complete.
//
//	for ev := range src.Events() {
//	    session.HandleTranscription(ev)
//	}
package transcription
