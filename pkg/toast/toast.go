// Package toast is the transient notification primitive: a
// bounded feed of short-lived messages the UI surface polls and
// renders, replacing the original's on-screen toasts.
package toast

import (
	"sync"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

const (
	defaultTTL = 3 * time.Second
	maxNotes   = 16
)

type Note struct {
	Message string
	Kind    Kind
	Expires time.Time
}

// Feed is safe for concurrent use: services push while the HTTP
// surface reads.
type Feed struct {
	mu    sync.Mutex
	notes []Note
	ttl   time.Duration
	now   func() time.Time
}

func NewFeed() *Feed {
	return &Feed{ttl: defaultTTL, now: time.Now}
}

func (f *Feed) Push(msg string, kind Kind) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.drop(f.now())
	f.notes = append(f.notes, Note{
		Message: msg,
		Kind:    kind,
		Expires: f.now().Add(f.ttl),
	})
	if len(f.notes) > maxNotes {
		f.notes = f.notes[len(f.notes)-maxNotes:]
	}
}

// Active returns the not-yet-expired notes, oldest first.
func (f *Feed) Active() []Note {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.drop(f.now())
	return append([]Note(nil), f.notes...)
}

// drop discards expired notes; the caller holds the lock.
func (f *Feed) drop(now time.Time) {
	kept := f.notes[:0]
	for _, n := range f.notes {
		if n.Expires.After(now) {
			kept = append(kept, n)
		}
	}
	f.notes = kept
}

func (f *Feed) Success(msg string) { f.Push(msg, KindSuccess) }
func (f *Feed) Error(msg string)   { f.Push(msg, KindError) }
func (f *Feed) Info(msg string)    { f.Push(msg, KindInfo) }
