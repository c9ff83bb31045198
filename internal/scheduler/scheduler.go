package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

const (
	StateUnknown = "unknown"
	StateUp      = "up"
	StateDown    = "down"
)

// Pinger is anything whose reachability can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreStatus is the outcome of the latest probe.
type StoreStatus struct {
	State     string    `json:"state"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt,omitempty"`
}

// Scheduler periodically pings the store and remembers the result. It only
// observes: a failing store is reported, never reconnected.
type Scheduler struct {
	scheduler *gocron.Scheduler
	pinger    Pinger
	interval  time.Duration
	timeout   time.Duration

	mu     sync.RWMutex
	status StoreStatus
}

// New creates a new Scheduler probing pinger every interval, each probe
// bounded by timeout.
func New(interval, timeout time.Duration, pinger Pinger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		pinger:    pinger,
		interval:  interval,
		timeout:   timeout,
		status:    StoreStatus{State: StateUnknown},
	}
}

// Start schedules the probe job, which also runs once right away.
func (s *Scheduler) Start() error {
	interval := s.interval
	if interval <= 0 {
		interval = time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(s.probe)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future probes.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// Status returns the latest probe result.
func (s *Scheduler) Status() StoreStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Scheduler) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	st := StoreStatus{State: StateUp, CheckedAt: time.Now().UTC()}
	if err := s.pinger.Ping(ctx); err != nil {
		st.State = StateDown
		st.Error = err.Error()
	}

	s.mu.Lock()
	prev := s.status.State
	s.status = st
	s.mu.Unlock()

	if prev != st.State {
		if st.State == StateDown {
			log.Printf("WARN: scheduler: store is down: %s", st.Error)
		} else {
			log.Printf("INFO: scheduler: store is %s", st.State)
		}
	}
}
