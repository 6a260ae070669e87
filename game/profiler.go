package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Profiler captures a CPU profile and an execution trace when an Update
// overruns its budget. Captures run in the background and are rate limited.
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	budget          time.Duration
	profilesDir     string
	log             zerolog.Logger

	now     func() time.Time
	capture func(baseName string)
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, budget, length, cooldown time.Duration, log zerolog.Logger) *Profiler {
	p := &Profiler{
		captureCooldown: cooldown,
		captureDuration: length,
		budget:          budget,
		profilesDir:     dir,
		log:             log,
		now:             time.Now,
	}
	p.capture = p.captureAsync
	return p
}

// Observe records how long one Update took and starts a capture when it
// exceeded the budget. It reports whether a capture was started.
func (p *Profiler) Observe(elapsed time.Duration) bool {
	if elapsed <= p.budget {
		return false
	}

	p.mu.Lock()
	now := p.now()
	if p.isProfiling || (!p.lastCaptureTime.IsZero() && now.Sub(p.lastCaptureTime) < p.captureCooldown) {
		p.mu.Unlock()
		return false
	}
	p.isProfiling = true
	p.lastCaptureTime = now
	p.mu.Unlock()

	baseName := fmt.Sprintf("slow-tick-%s-%dms", now.Format("20060102-150405"), elapsed.Milliseconds())
	p.log.Warn().Dur("elapsed", elapsed).Dur("budget", p.budget).Str("profile", baseName).Msg("slow tick, profiling")
	p.capture(baseName)
	return true
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) done() {
	p.mu.Lock()
	p.isProfiling = false
	p.mu.Unlock()
}

func (p *Profiler) captureAsync(baseName string) {
	go func() {
		defer p.done()

		if err := os.MkdirAll(p.profilesDir, 0755); err != nil {
			p.log.Error().Err(err).Msg("cannot create profile directory")
			return
		}

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				p.log.Error().Err(err).Msg("cpu profile failed")
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				p.log.Error().Err(err).Msg("trace failed")
			}
		}()
		wg.Wait()

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		p.log.Info().
			Str("profile", filepath.Join(p.profilesDir, baseName+".cpu.prof")).
			Uint32("num_gc", m.NumGC).
			Uint64("heap_kb", m.HeapAlloc/1024).
			Msg("profile saved, view with go tool pprof -http=:8080")
	}()
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	file, err := os.Create(filepath.Join(p.profilesDir, baseName+".cpu.prof"))
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	file, err := os.Create(filepath.Join(p.profilesDir, baseName+".trace"))
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()
	return nil
}
