package game

import (
	"io"
	"log"
	"sync"
	"time"

	"snake-engine/game/types"
)

const commandBuffer = 16

// Runner hosts an Engine on one goroutine. Commands and the movement,
// invincibility and hazard timers are all serialised through its loop, so
// the engine never sees concurrent calls.
type Runner struct {
	engine      *Engine
	commands    chan Command
	snapshots   chan Snapshot
	controlChan chan bool
	wg          sync.WaitGroup
	mutex       sync.RWMutex
	isRunning   bool
	logger      *log.Logger
}

type RunnerOption func(*Runner)

func WithRunnerLogger(logger *log.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewRunner(engine *Engine, opts ...RunnerOption) *Runner {
	r := &Runner{
		engine:      engine,
		commands:    make(chan Command, commandBuffer),
		snapshots:   make(chan Snapshot, 1), // only the latest frame is kept
		controlChan: make(chan bool, 1),
		logger:      log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start launches the loop; calling it on a running Runner does nothing
func (r *Runner) Start() {
	r.mutex.Lock()
	if r.isRunning {
		r.mutex.Unlock()
		return
	}
	r.isRunning = true
	r.mutex.Unlock()

	r.logger.Printf("runner started for game %s", r.engine.ID())
	r.wg.Add(1)
	go r.loop()
}

// Stop halts every timer and waits for the loop to exit
func (r *Runner) Stop() {
	r.mutex.Lock()
	if !r.isRunning {
		r.mutex.Unlock()
		return
	}
	r.isRunning = false
	r.mutex.Unlock()

	r.controlChan <- true
	r.wg.Wait()
	r.logger.Printf("runner stopped")
}

func (r *Runner) Running() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.isRunning
}

// Send queues a command without blocking; it returns false if the queue is full
func (r *Runner) Send(cmd Command) bool {
	select {
	case r.commands <- cmd:
		return true
	default:
		return false
	}
}

// Snapshots delivers the most recent frame after every state change
func (r *Runner) Snapshots() <-chan Snapshot {
	return r.snapshots
}

func (r *Runner) loop() {
	defer r.wg.Done()

	cfg := r.engine.Config()

	move := time.NewTimer(r.engine.Interval())
	defer move.Stop()

	var countdownC <-chan time.Time
	if cfg.PowerUp != nil {
		countdown := time.NewTicker(time.Duration(cfg.PowerUp.CountdownMs) * time.Millisecond)
		defer countdown.Stop()
		countdownC = countdown.C
	}

	var hazard *time.Ticker
	var hazardC <-chan time.Time
	if cfg.Hazard != nil {
		hazard = time.NewTicker(time.Duration(cfg.Hazard.SpawnIntervalMs) * time.Millisecond)
		defer hazard.Stop()
		hazardC = hazard.C
	}

	r.publish()

	for {
		select {
		case <-r.controlChan:
			return

		case cmd := <-r.commands:
			prevID, prevStatus := r.engine.ID(), r.engine.Status()
			if !r.engine.Apply(cmd) {
				continue
			}
			// A new game must not inherit a tick scheduled for the old one
			if r.engine.ID() != prevID || (prevStatus != types.Running && r.engine.Status() == types.Running) {
				resetTimer(move, r.engine.Interval())
				if hazard != nil {
					hazard.Reset(time.Duration(cfg.Hazard.SpawnIntervalMs) * time.Millisecond)
				}
			}
			r.publish()

		case <-move.C:
			running := r.engine.Status() == types.Running
			if err := r.engine.Tick(); err != nil {
				r.logger.Printf("tick: %v", err)
			}
			move.Reset(r.engine.Interval())
			if running {
				r.publish()
			}

		case <-countdownC:
			if r.engine.CountdownInvincibility() {
				r.publish()
			}

		case <-hazardC:
			if err := r.engine.SpawnHazard(); err != nil {
				r.logger.Printf("hazard: %v", err)
				continue
			}
			r.publish()
		}
	}
}

// publish replaces any unread frame with the current one. Only the loop
// goroutine sends, so the drain-then-send cannot race another sender.
func (r *Runner) publish() {
	snap := r.engine.Snapshot()
	select {
	case r.snapshots <- snap:
		return
	default:
	}
	select {
	case <-r.snapshots:
	default:
	}
	select {
	case r.snapshots <- snap:
	default:
	}
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
