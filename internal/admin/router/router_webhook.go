package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/careconnect-hq/careconnect/internal/admin/service"
	"github.com/careconnect-hq/careconnect/pkg/http"
)

// signatureHeader carries the HMAC of the raw request body.
const signatureHeader = "X-Signature"

func (rt *Router) webhookRouter(r fiber.Router) {
	r.Post("/webhooks/esign", rt.handleESignWebhook)
}

func (rt *Router) handleESignWebhook(c *fiber.Ctx) error {
	body := c.Body()
	signature := c.Get(signatureHeader)

	if err := rt.webhook.HandleEvent(body, signature); err != nil {
		if errors.Is(err, service.ErrBadSignature) {
			return http.WithRepErrMsg(c, http.AuthenticationFailed.Code, http.AuthenticationFailed.Msg, c.Path())
		}
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}
