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

package main

import (
	"context"
	"flag"
	"time"

	"github.com/careconnect-hq/careconnect/internal/admin/conf"
	"github.com/careconnect-hq/careconnect/internal/admin/consts"
	"github.com/careconnect-hq/careconnect/internal/admin/esign"
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/internal/admin/router"
	"github.com/careconnect-hq/careconnect/internal/admin/service"
	"github.com/careconnect-hq/careconnect/pkg/cache"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/database"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/log"
	"github.com/careconnect-hq/careconnect/pkg/storage"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "conf", "conf.d/config.toml", "conf file path, e.g. -conf ./conf.d/config.toml")
}

func main() {
	flag.Parse()

	cfg := conf.NewConf(configFile)
	log.MustInit(&cfg.Log)

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	mongoClient, err := database.NewMongoDB(cfg.Database.MongoDB, context.Background())
	if err != nil {
		log.Fatalf("failed to connect mongodb: %v", err)
	}
	defer func() {
		if err := mongoClient.Close(context.Background()); err != nil {
			log.Errorf("failed to close mongodb client: %v", err)
		}
	}()

	rdb, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	store, err := storage.NewStorage(&cfg.Storage)
	if err != nil {
		log.Fatalf("failed to init storage provider: %v", err)
	}

	appCtx := ctx.NewContext(context.Background(), db, mongoClient.DB, rdb, log.GetLogger())

	repos := repo.NewRepositories(appCtx)
	if err := repos.WebhookEvent.CreateIndexes(); err != nil {
		log.Errorf("failed to ensure webhook archive indexes: %v", err)
	}

	provider := esign.NewClient(cfg.ESign)
	broker := newBroker(repos)
	notifier := realtime.Notifier(broker)

	syncSvc := service.NewSyncService(appCtx, repos.User, repos.NewHire, repos.Document, repos.UserDocument, repos.Notification, notifier)
	scheduler, err := service.NewScheduler(cfg.Sync, syncSvc)
	if err != nil {
		log.Fatalf("failed to init scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	httpConf := http.NewHttp(cfg.Http)
	rt := router.NewRouter(httpConf, appCtx, repos, broker, provider, store)

	shutdown := httpConf.Server(rt.Router())
	shutdown()
}

// newBroker wires every dashboard collection to its snapshot loader.
func newBroker(repos *repo.Repositories) *realtime.Broker {
	broker := realtime.NewBroker()

	broker.RegisterFetcher(consts.CollectionUsers, func() (any, error) {
		users, _, err := repos.User.ListUsers("", 0, 1000)
		return users, err
	})
	broker.RegisterFetcher(consts.CollectionNewHires, func() (any, error) {
		return repos.NewHire.ListActive()
	})
	broker.RegisterFetcher(consts.CollectionTemplates, func() (any, error) {
		return repos.Document.ListTemplates()
	})
	broker.RegisterFetcher(consts.CollectionUserDocuments, func() (any, error) {
		return repos.UserDocument.ListAll()
	})
	broker.RegisterFetcher(consts.CollectionCalendarEvents, func() (any, error) {
		now := time.Now()
		return repos.Calendar.ListBetween(now.AddDate(0, -1, 0), now.AddDate(1, 0, 0))
	})
	broker.RegisterFetcher(consts.CollectionResources, func() (any, error) {
		resources, _, err := repos.Resource.ListResources("", 0, 1000)
		return resources, err
	})
	broker.RegisterFetcher(consts.CollectionQuestions, func() (any, error) {
		questions, _, err := repos.QA.ListQuestions("", 0, 1000)
		return questions, err
	})
	broker.RegisterFetcher(consts.CollectionAnswers, func() (any, error) {
		return repos.QA.ListRecentAnswers(1000)
	})
	broker.RegisterFetcher(consts.CollectionNotifications, func() (any, error) {
		return repos.Notification.ListRecent(1000)
	})
	broker.RegisterFetcher(consts.CollectionEditRequests, func() (any, error) {
		requests, _, err := repos.EditRequest.ListRequests(model.EditRequestPending, 0, 1000)
		return requests, err
	})

	return broker
}
