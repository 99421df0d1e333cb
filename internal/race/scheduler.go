package race

import "container/heap"

// ScheduledEvent is one priority-queue entry: an Event plus the ordering
// key it was pushed with. Phase and ReactorDistance are snapshotted at
// push time (reactor distance depends on current_racer_idx, which may
// have rotated by the time the event is dispatched).
type ScheduledEvent struct {
	Phase           Phase
	ReactorDistance int
	Serial          int64
	Depth           int
	Event           Event
}

// Less implements the total order over (phase, reactor distance, serial)
// required by §3 invariant 4.
func (s *ScheduledEvent) Less(other *ScheduledEvent) bool {
	if s.Phase != other.Phase {
		return s.Phase < other.Phase
	}
	if s.ReactorDistance != other.ReactorDistance {
		return s.ReactorDistance < other.ReactorDistance
	}
	return s.Serial < other.Serial
}

// eventQueue is a min-heap over ScheduledEvent's ordering key.
type eventQueue []*ScheduledEvent

func (q eventQueue) Len() int            { return len(q) }
func (q eventQueue) Less(i, j int) bool  { return q[i].Less(q[j]) }
func (q eventQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *eventQueue) Push(x any)         { *q = append(*q, x.(*ScheduledEvent)) }
func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// scheduler owns the priority queue and the monotonic serial counter.
// It never inspects event payloads; ordering only.
type scheduler struct {
	queue  eventQueue
	serial int64
}

func newScheduler() *scheduler {
	q := make(eventQueue, 0, 16)
	heap.Init(&q)
	return &scheduler{queue: q}
}

func (s *scheduler) empty() bool { return s.queue.Len() == 0 }

func (s *scheduler) clear() { s.queue = s.queue[:0] }

// push assigns the next serial and heap-pushes the event.
func (s *scheduler) push(phase Phase, reactorDistance, depth int, event Event) *ScheduledEvent {
	s.serial++
	se := &ScheduledEvent{
		Phase:           phase,
		ReactorDistance: reactorDistance,
		Serial:          s.serial,
		Depth:           depth,
		Event:           event,
	}
	heap.Push(&s.queue, se)
	return se
}

// pop removes and returns the lowest-ordered entry.
func (s *scheduler) pop() *ScheduledEvent {
	return heap.Pop(&s.queue).(*ScheduledEvent)
}

// reactorDistance computes (responsible - current) mod n, per §4.2. When
// responsible is noRacer the distance is 0.
func reactorDistance(responsible, current, n int) int {
	if responsible == noRacer || n == 0 {
		return 0
	}
	d := (responsible - current) % n
	if d < 0 {
		d += n
	}
	return d
}
