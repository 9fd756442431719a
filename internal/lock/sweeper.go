/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/reenboog/touchid/internal/system/log"
)

// sweepTimeout bounds a single sweep of expired locks.
const sweepTimeout = time.Minute

// expiredLockSweeper periodically removes expired locks on a cron schedule.
type expiredLockSweeper struct {
	cron   *cron.Cron
	remove func(ctx context.Context) (int64, error)
}

// newExpiredLockSweeper creates a sweeper running remove on the given cron schedule.
// The schedule accepts standard five field specs and descriptors such as "@every 5m".
func newExpiredLockSweeper(schedule string,
	remove func(ctx context.Context) (int64, error)) (*expiredLockSweeper, error) {
	sweeper := &expiredLockSweeper{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		remove: remove,
	}
	if _, err := sweeper.cron.AddFunc(schedule, sweeper.sweep); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", schedule, err)
	}
	return sweeper, nil
}

// start runs the schedule in its own goroutine.
func (s *expiredLockSweeper) start() {
	s.cron.Start()
}

// stop halts the schedule and waits for a running sweep to finish.
func (s *expiredLockSweeper) stop() {
	<-s.cron.Stop().Done()
}

// sweep removes the expired locks once.
func (s *expiredLockSweeper) sweep() {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ExpiredLockSweeper"))

	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	start := time.Now()
	removed, err := s.remove(ctx)
	if err != nil {
		logger.Error("Failed to remove expired locks", log.Error(err), log.Duration("elapsed", time.Since(start)))
		return
	}
	if removed > 0 {
		logger.Info("Removed expired locks", log.Int64("count", removed), log.Duration("elapsed", time.Since(start)))
	}
}
