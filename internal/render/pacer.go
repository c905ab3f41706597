package render

import (
	"context"
	"time"
)

// DefaultFPS is used when a non-positive frame rate is requested
const DefaultFPS = 60

// FrameInterval returns the duration of one frame at fps
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Pacer spaces frames to a target rate. The rate is passed on every call so
// configuration changes apply on the next frame.
type Pacer struct {
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
	next  time.Time
}

// NewPacer creates a pacer on the wall clock
func NewPacer() *Pacer {
	return &Pacer{now: time.Now, sleep: sleepContext}
}

// Wait blocks until the next frame is due at fps. It returns the context
// error if the context ends first. When the loop falls more than one frame
// behind, the schedule restarts from now instead of bursting to catch up.
func (p *Pacer) Wait(ctx context.Context, fps int) error {
	interval := FrameInterval(fps)
	now := p.now()
	if p.next.IsZero() || now.Sub(p.next) > interval {
		p.next = now
	}

	if wait := p.next.Sub(now); wait > 0 {
		if err := p.sleep(ctx, wait); err != nil {
			return err
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	p.next = p.next.Add(interval)
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
