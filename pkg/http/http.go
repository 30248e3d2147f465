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

package http

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careconnect-hq/careconnect/pkg/log"
	"github.com/gofiber/fiber/v2"
)

type Http struct {
	Host            string
	Port            int
	ContextPath     string `mapstructure:"contextPath"`
	ExposeMetrics   bool
	AccessLog       bool
	ReadTimeout     int
	WriteTimeout    int
	IdleTimeout     int
	ShutdownTimeout int
	TLS             TLS
	Auth            Auth
}

type TLS struct {
	CertFile string
	KeyFile  string
}

type Auth struct {
	SecretKey      string
	AccessExpire   time.Duration
	RefreshExpire  time.Duration
	RedisKeyPrefix string
	// MasterEmail identifies the master administrator account.
	MasterEmail string `mapstructure:"masterEmail"`
}

func NewHttp(cfg Http) *Http {
	h := cfg
	return &h
}

// Server starts the fiber app and returns a blocking shutdown hook.
// The hook waits for a termination signal, then drains connections
// within ShutdownTimeout seconds.
func (h *Http) Server(app *fiber.App) func() {
	addr := fmt.Sprintf("%s:%d", h.Host, h.Port)

	go func() {
		log.Infof("http server start at: %s", addr)

		var err error
		if h.TLS.CertFile != "" && h.TLS.KeyFile != "" {
			err = app.ListenTLS(addr, h.TLS.CertFile, h.TLS.KeyFile)
		} else {
			err = app.Listen(addr)
		}
		if err != nil {
			panic(err)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	return func() {
		<-sc
		log.Info("server is shutting down...")

		timeout := time.Duration(h.ShutdownTimeout) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		if err := app.ShutdownWithTimeout(timeout); err != nil {
			log.Errorf("server shutdown error: %v", err)
			return
		}
		log.Info("http exit...")
	}
}
