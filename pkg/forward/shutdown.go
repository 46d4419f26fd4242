/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package forward

import (
	"fmt"
	"sync"
	"time"
)

// Shutdown tracks stop requests. A requested stop takes effect at the next record boundary.
type Shutdown struct {
	startShutdown      bool
	initiateTime       time.Time
	shutdownRequestCtr int
	rwlock             *sync.RWMutex
}

func newShutdown() *Shutdown {
	return &Shutdown{rwlock: new(sync.RWMutex)}
}

// IsShuttingDown returns whether we can stop processing.
func (df *DataForward) IsShuttingDown() bool {
	df.shutdown.rwlock.RLock()
	defer df.shutdown.rwlock.RUnlock()
	return df.shutdown.startShutdown
}

func (s *Shutdown) String() string {
	s.rwlock.RLock()
	defer s.rwlock.RUnlock()
	return fmt.Sprintf("startShutdown:%t shutdownRequestCtr:%d initiateTime:%s",
		s.startShutdown, s.shutdownRequestCtr, s.initiateTime)
}

// Stop asks Run to return once the record in flight, if any, has been written.
// It is safe to call from another goroutine and more than once.
func (df *DataForward) Stop() {
	df.shutdown.rwlock.Lock()
	defer df.shutdown.rwlock.Unlock()
	if df.shutdown.initiateTime.IsZero() {
		df.shutdown.initiateTime = time.Now()
	}
	df.shutdown.startShutdown = true
	df.shutdown.shutdownRequestCtr++
}
