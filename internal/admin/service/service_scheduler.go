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

package service

import (
	"time"

	"github.com/careconnect-hq/careconnect/internal/admin/conf"
	"github.com/careconnect-hq/careconnect/pkg/cron"
	"github.com/careconnect-hq/careconnect/pkg/log"
	"github.com/careconnect-hq/careconnect/pkg/metrics"
)

const (
	defaultSyncSpec = "0 0 2 * * *"
	defaultScanSpec = "0 0 8 * * *"
)

// Scheduler runs the recurring document-tracking maintenance jobs.
type Scheduler struct {
	cron *cron.Cron
	sync *SyncService
}

func NewScheduler(cfg conf.SyncConfig, syncSvc *SyncService) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(),
		sync: syncSvc,
	}

	syncSpec := cfg.SyncSpec
	if syncSpec == "" {
		syncSpec = defaultSyncSpec
	}
	scanSpec := cfg.ScanSpec
	if scanSpec == "" {
		scanSpec = defaultScanSpec
	}

	if err := s.cron.AddFunc(syncSpec, s.runSync, "tracking-sync"); err != nil {
		return nil, err
	}
	if err := s.cron.AddFunc(scanSpec, s.runScan, "tracking-scan"); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	for _, e := range s.cron.Entries() {
		log.Infow("scheduled job registered", "job", e.Name, "spec", e.Spec)
	}
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runSync() {
	start := time.Now()
	report, err := s.sync.Sync()
	metrics.JobRunDurationSeconds.WithLabelValues("tracking-sync").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.JobRunsTotal.WithLabelValues("tracking-sync", "error").Inc()
		log.Errorw("tracking sync failed", "error", err)
		return
	}
	metrics.JobRunsTotal.WithLabelValues("tracking-sync", "ok").Inc()
	log.Infow("tracking sync finished",
		"usersScanned", report.UsersScanned,
		"hiresScanned", report.HiresScanned,
		"rowsCreated", report.RowsCreated)
}

func (s *Scheduler) runScan() {
	start := time.Now()
	report, err := s.sync.Scan()
	metrics.JobRunDurationSeconds.WithLabelValues("tracking-scan").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.JobRunsTotal.WithLabelValues("tracking-scan", "error").Inc()
		log.Errorw("tracking scan failed", "error", err)
		return
	}
	metrics.JobRunsTotal.WithLabelValues("tracking-scan", "ok").Inc()
	log.Infow("tracking scan finished",
		"rowsExpired", report.RowsExpired,
		"remindersSent", report.RemindersSent)
}
