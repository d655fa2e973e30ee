// File: interp/queues.go
// Author: momentics <momentics@gmail.com>
//
// JobQueue is an intrusive doubly-linked list over Job.Prev/Next,
// backing the Runtime's run/blocked/wait queues (spec.md §3 "three
// doubly-linked job queues"). Grounded on the original header's job
// list-head fields; adapted from C's embedded prev/next pointers to a
// small Go wrapper type around the same fields.
package interp

// JobQueue is a FIFO of jobs linked through their own Prev/Next fields.
type JobQueue struct {
	head *Job
	tail *Job
	n    int
}

// NewJobQueue returns an empty queue.
func NewJobQueue() *JobQueue {
	return &JobQueue{}
}

// Len reports the number of jobs currently queued.
func (q *JobQueue) Len() int { return q.n }

// PushBack appends job to the tail.
func (q *JobQueue) PushBack(j *Job) {
	j.Prev, j.Next = q.tail, nil
	if q.tail != nil {
		q.tail.Next = j
	} else {
		q.head = j
	}
	q.tail = j
	q.n++
}

// Remove unlinks job from wherever it sits in the queue. It is a no-op
// if job is not linked into this queue.
func (q *JobQueue) Remove(j *Job) {
	for cur := q.head; cur != j; cur = cur.Next {
		if cur == nil {
			return
		}
	}
	if j.Prev != nil {
		j.Prev.Next = j.Next
	} else if q.head == j {
		q.head = j.Next
	}
	if j.Next != nil {
		j.Next.Prev = j.Prev
	} else if q.tail == j {
		q.tail = j.Prev
	}
	j.Prev, j.Next = nil, nil
	q.n--
}

// PopFront removes and returns the head job, or nil if the queue is
// empty.
func (q *JobQueue) PopFront() *Job {
	j := q.head
	if j == nil {
		return nil
	}
	q.Remove(j)
	return j
}

// Front returns the head job without removing it.
func (q *JobQueue) Front() *Job {
	return q.head
}

// Each walks the queue front to back. fn must not mutate the queue.
func (q *JobQueue) Each(fn func(*Job)) {
	for j := q.head; j != nil; j = j.Next {
		fn(j)
	}
}
