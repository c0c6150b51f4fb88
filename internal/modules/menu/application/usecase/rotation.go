package usecase

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultSliderInterval = 5 * time.Second
	DefaultPhraseInterval = 3 * time.Second
)

// StartRotation calls tick with the next index every interval until ctx ends or stop is called.
// Fewer than two items never rotate. The returned stop is safe to call more than once.
func StartRotation(ctx context.Context, interval time.Duration, count int, tick func(index int)) (stop func()) {
	if count < 2 || interval <= 0 || tick == nil {
		return func() {}
	}
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		index := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				index = (index + 1) % count
				tick(index)
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
		})
	}
}
