/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package snapshot

import (
	"sync"

	"golang.org/x/sync/errgroup"

	libpool "github.com/nabbar/autotrail/errors/pool"
)

// Producer yields one named slice of snapshot entries. It takes no
// argument, matching the "zero-argument callable" contract: whatever state
// a producer reports on is closed over when it is registered, not passed
// in at collection time.
type Producer func() (map[string]interface{}, error)

// Aggregator holds an ordered list of Producer and merges their output into
// one mapping on every Collect call. It does not retain the result between
// calls; callers wanting a cached view take their own copy.
type Aggregator struct {
	mu   sync.Mutex
	list []Producer
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Register appends p to the producer list. Producers run in the order they
// were registered, and that same order governs which producer's keys win
// on conflict (last registered, last merged, wins).
func (a *Aggregator) Register(p Producer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.list = append(a.list, p)
}

// Collect runs every registered Producer concurrently, then merges their
// results sequentially in registration order so key precedence never
// depends on goroutine scheduling. A Producer error does not stop the
// others; every error is collected into the returned pool and the merge
// proceeds with whatever mappings did succeed.
func (a *Aggregator) Collect() (map[string]interface{}, libpool.Pool) {
	a.mu.Lock()
	producers := make([]Producer, len(a.list))
	copy(producers, a.list)
	a.mu.Unlock()

	results := make([]map[string]interface{}, len(producers))
	errs := libpool.New()

	var grp errgroup.Group
	for i, p := range producers {
		i, p := i, p
		grp.Go(func() error {
			m, err := p()
			if err != nil {
				errs.Add(err)
				return nil
			}
			results[i] = m
			return nil
		})
	}
	_ = grp.Wait()

	merged := make(map[string]interface{})
	for _, m := range results {
		for k, v := range m {
			merged[k] = v
		}
	}

	return merged, errs
}
