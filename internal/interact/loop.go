// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package interact drives the accept/regenerate loop around passphrase
// generation.
//
// The loop moves Generated -> AwaitingDecision -> {Accepted, Regenerate} and
// back from Regenerate to Generated. Without interactive mode the first
// generation is accepted immediately.
package interact

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/toeirei/genpwd/internal/i18n"
	"github.com/toeirei/genpwd/internal/logging"
)

var (
	// ErrInputClosed is returned when the input ends before an answer.
	ErrInputClosed = errors.New("input closed before a passphrase was accepted")
	// ErrPromptTimeout is returned when no answer arrives within Loop.Timeout.
	ErrPromptTimeout = errors.New("timed out waiting for an answer")
)

// State is a step of the loop.
type State int

const (
	StateGenerated State = iota
	StateAwaitingDecision
	StateAccepted
	StateRegenerate
)

func (s State) String() string {
	switch s {
	case StateGenerated:
		return "generated"
	case StateAwaitingDecision:
		return "awaiting-decision"
	case StateAccepted:
		return "accepted"
	case StateRegenerate:
		return "regenerate"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Stats summarises a finished run.
type Stats struct {
	Attempts int
	Invalid  int
}

// Loop presents generated passphrases until one is accepted.
type Loop struct {
	// Generate returns a fresh passphrase on every call.
	Generate func() (string, error)
	In       io.Reader
	Out      io.Writer
	// Interactive enables the prompt.
	Interactive bool
	// Timeout bounds each wait for an answer. Zero waits forever.
	Timeout time.Duration
}

// Run returns the accepted passphrase.
func (l *Loop) Run(ctx context.Context) (string, error) {
	pass, _, err := l.RunStats(ctx)
	return pass, err
}

// RunStats is Run plus counters for diagnostics.
func (l *Loop) RunStats(ctx context.Context) (string, Stats, error) {
	var stats Stats

	pass, err := l.generate(&stats)
	if err != nil {
		return "", stats, err
	}
	if !l.Interactive {
		l.transition(StateGenerated, StateAccepted)
		return pass, stats, nil
	}

	lines := newLineReader(l.In)
	defer lines.stop()

	for {
		fmt.Fprintln(l.Out, pass)
		fmt.Fprint(l.Out, i18n.T("prompt.accept"))
		l.transition(StateGenerated, StateAwaitingDecision)

	await:
		for {
			answer, err := l.next(ctx, lines)
			if err != nil {
				return "", stats, err
			}
			switch ParseDecision(answer) {
			case DecisionAccept:
				l.transition(StateAwaitingDecision, StateAccepted)
				return pass, stats, nil
			case DecisionReject:
				l.transition(StateAwaitingDecision, StateRegenerate)
				if pass, err = l.generate(&stats); err != nil {
					return "", stats, err
				}
				l.transition(StateRegenerate, StateGenerated)
				break await
			default:
				stats.Invalid++
				fmt.Fprintln(l.Out, i18n.T("prompt.invalid"))
				fmt.Fprint(l.Out, i18n.T("prompt.accept"))
			}
		}
	}
}

func (l *Loop) generate(stats *Stats) (string, error) {
	stats.Attempts++
	return l.Generate()
}

func (l *Loop) transition(from, to State) {
	logging.Debugf("interact: %s -> %s", from, to)
}

func (l *Loop) next(ctx context.Context, lines *lineReader) (string, error) {
	var timeout <-chan time.Time
	if l.Timeout > 0 {
		t := time.NewTimer(l.Timeout)
		defer t.Stop()
		timeout = t.C
	}

	lines.request()
	select {
	case res := <-lines.ch:
		return res.line, res.err
	case <-timeout:
		fmt.Fprintln(l.Out)
		fmt.Fprintln(l.Out, i18n.T("prompt.timeout", l.Timeout))
		return "", ErrPromptTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

type lineResult struct {
	line string
	err  error
}

// lineReader performs blocking reads on a goroutine so they can race against
// cancellation. A read only starts when requested, so nothing is consumed
// from the input once the loop has its answer.
type lineReader struct {
	req  chan struct{}
	ch   chan lineResult
	done chan struct{}
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{req: make(chan struct{}), ch: make(chan lineResult), done: make(chan struct{})}
	go func() {
		br := bufio.NewReader(r)
		for {
			select {
			case <-lr.req:
			case <-lr.done:
				return
			}

			line, err := br.ReadString('\n')
			var res lineResult
			switch {
			case len(line) > 0:
				res.line = line
			case errors.Is(err, io.EOF):
				res.err = ErrInputClosed
			default:
				res.err = fmt.Errorf("read answer: %w", err)
			}

			select {
			case lr.ch <- res:
			case <-lr.done:
				return
			}
		}
	}()
	return lr
}

// request starts one read. The result arrives on ch.
func (lr *lineReader) request() {
	select {
	case lr.req <- struct{}{}:
	case <-lr.done:
	}
}

func (lr *lineReader) stop() { close(lr.done) }
