package timer

import "sync"

// mailbox delivers every pushed event in order. Pushes never block; the
// queue grows while the reader lags.
type mailbox struct {
	mu     sync.Mutex
	queue  []Event
	wake   chan struct{}
	out    chan Event
	closed bool
}

func newMailbox() *mailbox {
	box := &mailbox{
		wake: make(chan struct{}, 1),
		out:  make(chan Event),
	}
	go box.run()
	return box
}

func (box *mailbox) push(event Event) {
	box.mu.Lock()
	if box.closed {
		box.mu.Unlock()
		return
	}
	box.queue = append(box.queue, event)
	box.mu.Unlock()
	box.signal()
}

// close lets queued events drain and then closes the output channel.
func (box *mailbox) close() {
	box.mu.Lock()
	box.closed = true
	box.mu.Unlock()
	box.signal()
}

func (box *mailbox) signal() {
	select {
	case box.wake <- struct{}{}:
	default:
	}
}

func (box *mailbox) run() {
	defer close(box.out)
	for {
		box.mu.Lock()
		if len(box.queue) == 0 {
			closed := box.closed
			box.mu.Unlock()
			if closed {
				return
			}
			<-box.wake
			continue
		}
		event := box.queue[0]
		box.queue[0] = Event{}
		box.queue = box.queue[1:]
		box.mu.Unlock()
		box.out <- event
	}
}
