// Copyright 2026 CareConnect Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cron schedules named background jobs on cron expressions.
package cron

import (
	"errors"
	"sync"
	"time"

	robfig "github.com/robfig/cron"

	"github.com/careconnect-hq/careconnect/pkg/safe"
)

var ErrDuplicateJob = errors.New("a job with this name is already registered")

// Entry describes one registered job.
type Entry struct {
	Name string
	Spec string
}

// Cron wraps the underlying scheduler with a name registry so jobs can be
// listed and duplicates rejected.
type Cron struct {
	mu       sync.Mutex
	inner    *robfig.Cron
	entries  []Entry
	location *time.Location
	running  bool
}

func New() *Cron {
	return NewWithLocation(time.Local)
}

func NewWithLocation(loc *time.Location) *Cron {
	return &Cron{
		inner:    robfig.NewWithLocation(loc),
		location: loc,
	}
}

// AddFunc registers cmd under name to run on the cron spec. The job body
// runs panic-guarded so one bad run cannot kill the scheduler.
func (c *Cron) AddFunc(spec string, cmd func(), name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.Name == name {
			return ErrDuplicateJob
		}
	}

	err := c.inner.AddFunc(spec, func() {
		safe.Do(cmd)
	})
	if err != nil {
		return err
	}
	c.entries = append(c.entries, Entry{Name: name, Spec: spec})
	return nil
}

func (c *Cron) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Cron) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.inner.Start()
	c.running = true
}

func (c *Cron) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.inner.Stop()
	c.running = false
}
