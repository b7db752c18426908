package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/auth/boot", h.Boot)
	app.Post("/api/v1/auth/start", h.Start)
	app.Get("/api/v1/auth/intent", h.GetIntent)
	app.Post("/api/v1/auth/intent/verify", h.VerifyStep)
	app.Post("/api/v1/auth/intent/resend", h.ResendStep)
	app.Post("/api/v1/auth/intent/captcha", h.VerifyCaptcha)
	app.Post("/api/v1/auth/intent/user", h.CreateUser)
	app.Post("/api/v1/auth/intent/complete", h.Complete)

	app.Post("/api/v1/auth/sso", h.StartSSO)
	app.Get("/api/v1/auth/sso/callback", h.CompleteSSO)
	app.Post("/api/v1/auth/oauth", h.StartOAuth)
	app.Get("/api/v1/auth/oauth/callback", h.CompleteOAuth)

	app.Post("/api/v1/auth/exchange", h.Exchange)
	app.Delete("/api/v1/session", h.Logout)

	app.Get("/api/v1/access/app/:appID", h.CheckAppAccess)
	app.Get("/api/v1/access/app/:appID/surface/:surfaceID", h.CheckSurfaceAccess)
	app.Get("/api/v1/access/group/:groupID", h.CheckGroupAccess)
}
