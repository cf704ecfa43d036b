package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kbukum/captionkit/caption"
	"github.com/kbukum/captionkit/logger"
	"github.com/kbukum/captionkit/settings"
	"github.com/kbukum/captionkit/transcription"
)

// Envelope types accepted on stdin.
const (
	typeStart      = "start"
	typeStop       = "stop"
	typeTranscript = "transcript"
	typeSettings   = "settings"
	typeClear      = "clear"
)

// envelope is one input line:
//
//	{"type":"start","session":"s1","user":"alice","settings":{"lineWidth":"wide","lineCount":2}}
//	{"type":"transcript","session":"s1","text":"hello","isFinal":true,"languageTag":"en-US"}
//	{"type":"settings","session":"s1","settings":{"languageTag":"zh-CN"}}
//	{"type":"stop","session":"s1","user":"alice","reason":"hangup"}
type envelope struct {
	Type     string             `json:"type"`
	Session  string             `json:"session"`
	User     string             `json:"user,omitempty"`
	Reason   string             `json:"reason,omitempty"`
	Settings *settings.Snapshot `json:"settings,omitempty"`
	transcription.Event
}

// dispatcher applies envelopes to a registry.
type dispatcher struct {
	reg *caption.Registry
	log *logger.Logger
}

func (d *dispatcher) dispatch(ctx context.Context, env envelope) error {
	switch env.Type {
	case typeStart:
		var snap settings.Snapshot
		if env.Settings != nil {
			snap = *env.Settings
		}
		_, err := d.reg.StartSession(ctx, env.Session, env.User, snap)
		return err
	case typeStop:
		return d.reg.StopSession(ctx, env.Session, env.User, env.Reason)
	case typeTranscript:
		return d.reg.HandleTranscription(env.Session, env.Event)
	case typeSettings:
		if env.Settings == nil {
			return fmt.Errorf("settings envelope without settings")
		}
		return d.reg.ApplySettings(env.Session, *env.Settings)
	case typeClear:
		s, ok := d.reg.Session(env.Session)
		if !ok {
			return fmt.Errorf("unknown session %q", env.Session)
		}
		return s.Clear()
	default:
		return fmt.Errorf("unknown envelope type %q", env.Type)
	}
}

// run reads envelopes until EOF or ctx is done. Bad lines are logged and
// skipped.
func (d *dispatcher) run(ctx context.Context, r io.Reader) error {
	lines := make(chan []byte)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	n := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					return err
				default:
					return nil
				}
			}
			n++
			d.handleLine(ctx, n, line)
		}
	}
}

func (d *dispatcher) handleLine(ctx context.Context, n int, line []byte) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return
	}
	var env envelope
	if err := json.Unmarshal(line, &env); err != nil {
		d.log.Warn("skipping malformed envelope", logger.Fields("line", n, logger.FieldError, err.Error()))
		return
	}
	if err := d.dispatch(ctx, env); err != nil {
		d.log.Warn("envelope rejected", logger.Fields(
			"line", n,
			"type", env.Type,
			logger.FieldSessionID, env.Session,
			logger.FieldError, err.Error(),
		))
	}
}
