// jobs.go holds the in-memory job store backing the upload API. Jobs are
// kept only for the lifetime of the process; there is no persistence.

package server

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KennedyTaragon/Packing-List-Generator/formats"
)

// Job statuses, in lifecycle order.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Job tracks one uploaded order file through processing.
type Job struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Status      string    `json:"status"`
	OrderNumber string    `json:"order_number,omitempty"`
	OrderDate   string    `json:"order_date,omitempty"`
	TotalOrders int       `json:"total_orders"`
	TotalBooks  int       `json:"total_books"`
	Branches    int       `json:"total_branches"`
	Warnings    []string  `json:"warnings,omitempty"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`

	// outputs holds the rendered artifacts for download.
	outputs []formats.OutputFile
}

// jobStore is a mutex-guarded map of jobs. Uploads are processed
// synchronously, so the lock only serializes store access, not work.
type jobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
}

func newJobStore() *jobStore {
	return &jobStore{jobs: make(map[string]*Job)}
}

// create registers a new pending job for an uploaded file.
func (s *jobStore) create(filename string) *Job {
	job := &Job{
		ID:        uuid.NewString(),
		Filename:  filename,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()
	return job
}

// get returns a snapshot of a job, or nil if unknown. Handlers marshal
// jobs outside the lock, so the live record never leaves the store.
func (s *jobStore) get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id].clone()
}

// complete records a successful run on the job.
func (s *jobStore) complete(job *Job, summary *formats.Summary, outputs []formats.OutputFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.Status = StatusCompleted
	job.OrderNumber = summary.OrderNumber
	job.OrderDate = summary.OrderDate
	job.TotalOrders = summary.TotalOrders
	job.TotalBooks = summary.TotalBooks
	job.Branches = summary.Branches
	job.Warnings = summary.Warnings
	now := time.Now()
	job.ProcessedAt = &now
	job.outputs = outputs
}

// fail records a failed run on the job.
func (s *jobStore) fail(job *Job, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.Status = StatusFailed
	job.Error = err.Error()
	now := time.Now()
	job.ProcessedAt = &now
}

// setProcessing flips a pending job to processing.
func (s *jobStore) setProcessing(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.Status = StatusProcessing
}

// recent returns job snapshots newest first, capped at limit.
func (s *jobStore) recent(limit int) []*Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]*Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		all = append(all, job.clone())
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}

// clone copies a job, including its slice fields, so the caller can read
// it after the store mutex is released. Output data is shared: artifacts
// are never mutated once attached.
func (j *Job) clone() *Job {
	if j == nil {
		return nil
	}
	c := *j
	if j.Warnings != nil {
		c.Warnings = append([]string(nil), j.Warnings...)
	}
	if j.outputs != nil {
		c.outputs = append([]formats.OutputFile(nil), j.outputs...)
	}
	return &c
}

// output looks up a rendered artifact on a completed job by category.
// An empty category returns the first output.
func (j *Job) output(category string) *formats.OutputFile {
	for i := range j.outputs {
		if category == "" || j.outputs[i].Category == category {
			return &j.outputs[i]
		}
	}
	return nil
}
