package seph

import "sync/atomic"

const mailboxSlots = 8

// Mailbox is a fixed-size frame queue: no allocations, drop on full.
//
// One goroutine may send while another receives. Concurrent senders must
// be serialized by the caller.
type Mailbox struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [mailboxSlots]Frame
}

// TrySend enqueues a copy of b, returning false if the mailbox is full.
func (mb *Mailbox) TrySend(b []byte) bool {
	head := mb.head.Load()
	tail := mb.tail.Load()
	if head-tail >= mailboxSlots {
		return false
	}

	// Fill the slot before publishing it to the receiver.
	mb.slots[head%mailboxSlots].Set(b)
	mb.head.Store(head + 1)
	return true
}

// TryRecv dequeues one frame, returning false if empty.
func (mb *Mailbox) TryRecv() (Frame, bool) {
	tail := mb.tail.Load()
	head := mb.head.Load()
	if tail == head {
		return Frame{}, false
	}

	f := mb.slots[tail%mailboxSlots]
	mb.tail.Store(tail + 1)
	return f, true
}

// Len returns the number of queued frames.
func (mb *Mailbox) Len() int {
	return int(mb.head.Load() - mb.tail.Load())
}
