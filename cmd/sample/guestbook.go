package main

import (
	"strconv"
	"sync"
	"time"
)

// Entry is one guestbook signature.
type Entry struct {
	ID        string
	Name      string
	Message   string
	CreatedAt time.Time
}

type guestbook struct {
	mu      sync.RWMutex
	entries []Entry
	nextID  int
}

func newGuestbook() *guestbook {
	return &guestbook{nextID: 1}
}

func (g *guestbook) add(name, message string) Entry {
	g.mu.Lock()
	defer g.mu.Unlock()

	e := Entry{
		ID:        strconv.Itoa(g.nextID),
		Name:      name,
		Message:   message,
		CreatedAt: time.Now(),
	}
	g.nextID++
	g.entries = append(g.entries, e)
	return e
}

func (g *guestbook) list() []Entry {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Entry, len(g.entries))
	copy(out, g.entries)
	return out
}

func (g *guestbook) get(id string) (Entry, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

func (g *guestbook) clear() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.entries)
	g.entries = nil
	return n
}
