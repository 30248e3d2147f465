package router

import (
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/careconnect-hq/careconnect/internal/admin/consts"
	"github.com/careconnect-hq/careconnect/internal/admin/esign"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/internal/admin/service"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/http/middleware"
	"github.com/careconnect-hq/careconnect/pkg/metrics"
	"github.com/careconnect-hq/careconnect/pkg/storage"
	"github.com/careconnect-hq/careconnect/pkg/version"
	"github.com/careconnect-hq/careconnect/pkg/ws"
)

// uploads are capped at 20 MB, leave headroom for multipart framing
const bodyLimit = 25 * 1024 * 1024

type Router struct {
	Http *http.Http
	Ctx  *ctx.Context

	repos  *repo.Repositories
	broker *realtime.Broker

	auth         *service.AuthService
	user         *service.UserService
	newHire      *service.NewHireService
	document     *service.DocumentService
	sync         *service.SyncService
	webhook      *service.WebhookService
	calendar     *service.CalendarService
	qa           *service.QAService
	resource     *service.ResourceService
	notification *service.NotificationService
	editRequest  *service.EditRequestService
}

func NewRouter(
	httpConf *http.Http,
	appCtx *ctx.Context,
	repos *repo.Repositories,
	broker *realtime.Broker,
	provider esign.ISignProvider,
	store storage.Provider,
) *Router {
	notifier := realtime.Notifier(broker)

	reconcileSvc := service.NewReconcileService(appCtx, repos.User, repos.NewHire, repos.UserDocument)
	syncSvc := service.NewSyncService(appCtx, repos.User, repos.NewHire, repos.Document, repos.UserDocument, repos.Notification, notifier)

	return &Router{
		Http:   httpConf,
		Ctx:    appCtx,
		repos:  repos,
		broker: broker,

		auth:         service.NewAuthService(appCtx, repos.User),
		user:         service.NewUserService(appCtx, repos, reconcileSvc, syncSvc, notifier),
		newHire:      service.NewNewHireService(appCtx, repos, syncSvc, notifier),
		document:     service.NewDocumentService(appCtx, repos, provider, notifier),
		sync:         syncSvc,
		webhook:      service.NewWebhookService(appCtx, repos, provider, reconcileSvc, notifier),
		calendar:     service.NewCalendarService(appCtx, repos, notifier),
		qa:           service.NewQAService(appCtx, repos, notifier),
		resource:     service.NewResourceService(appCtx, repos, store, notifier),
		notification: service.NewNotificationService(appCtx, repos, notifier),
		editRequest:  service.NewEditRequestService(appCtx, repos, notifier),
	}
}

func (rt *Router) Router() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "CareConnect Admin",
		ReadTimeout:  time.Duration(rt.Http.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(rt.Http.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(rt.Http.IdleTimeout) * time.Second,
		BodyLimit:    bodyLimit,
	})

	app.Use(
		fiberrecover.New(),
		cors.New(),
		middleware.ExceptionMiddleware,
	)

	if rt.Http.AccessLog {
		app.Use(middleware.AccessLogMiddleware(rt.Http))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(version.GetVersion())
	})

	if rt.Http.ExposeMetrics {
		metrics.Register()
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := app.Group(rt.Http.ContextPath)
	rt.routerGroup(api)

	app.Use(func(c *fiber.Ctx) error {
		return http.WithRepErrMsg(c, fiber.StatusNotFound, "request path not found", c.Path())
	})

	return app
}

func (rt *Router) routerGroup(r fiber.Router) {
	auth := middleware.AuthorizationMiddleware(
		rt.Http.Auth.SecretKey,
		consts.UserTokenKey,
		rt.Ctx.GetRedis(),
	)
	admin := middleware.AdminOnly()

	// realtime dashboard subscription
	r.Get("/subscribe", auth, ws.Handle(rt.broker.Hub(), rt.broker))

	// signing provider callback, authenticated by HMAC signature
	rt.webhookRouter(r)

	rt.authRouter(r, auth)
	rt.userRouter(r, auth, admin)
	rt.newHireRouter(r, auth, admin)
	rt.documentRouter(r, auth, admin)
	rt.calendarRouter(r, auth, admin)
	rt.qaRouter(r, auth, admin)
	rt.resourceRouter(r, auth, admin)
	rt.notificationRouter(r, auth)
	rt.editRequestRouter(r, auth, admin)
}
