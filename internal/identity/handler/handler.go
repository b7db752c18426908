package handler

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	autherror "github.com/metorial/identity-core/internal/errors"
	"github.com/metorial/identity-core/internal/identity/domain"
	"github.com/metorial/identity-core/internal/identity/dto"
	"github.com/metorial/identity-core/internal/identity/service"
)

const (
	cookieDeviceID     = "mt_device_id"
	cookieDeviceSecret = "mt_device_secret"
	cookieSessionID    = "mt_session_id"
)

type AuthHandler struct {
	intents  *service.IntentService
	sessions *service.SessionService
	access   *service.AccessService
	logger   *slog.Logger
}

func NewAuthHandler(intents *service.IntentService, sessions *service.SessionService, access *service.AccessService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{intents: intents, sessions: sessions, access: access, logger: logger}
}

func statusFor(err error) int {
	switch autherror.KindOf(err) {
	case autherror.KindUnauthorized:
		return fiber.StatusUnauthorized
	case autherror.KindForbidden:
		return fiber.StatusForbidden
	case autherror.KindBadRequest:
		return fiber.StatusBadRequest
	case autherror.KindNotFound:
		return fiber.StatusNotFound
	case autherror.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *AuthHandler) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.Path(), "error", err)
		return c.Status(status).JSON(fiber.Map{"error": "internal error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func requestContext(c *fiber.Ctx) domain.RequestContext {
	return domain.RequestContext{
		IPAddress: c.IP(),
		UserAgent: string(c.Request().Header.UserAgent()),
	}
}

// Boot is the first call every client makes: it ensures a device
// identity (setting fresh cookies when the presented pair is invalid)
// and reports the authenticated user, if any.
func (h *AuthHandler) Boot(c *fiber.Ctx) error {
	ctx := c.Context()
	rc := requestContext(c)

	device, newSecret, err := h.sessions.EnsureDevice(ctx, c.Cookies(cookieDeviceID), c.Cookies(cookieDeviceSecret), rc)
	if err != nil {
		return h.fail(c, err)
	}
	out := dto.BootOutput{DeviceID: device.ID}
	deviceSecret := c.Cookies(cookieDeviceSecret)
	if newSecret != "" {
		deviceSecret = newSecret
		out.DeviceSecret = newSecret
		setDeviceCookies(c, device.ID, newSecret)
	}

	if sessionID := c.Cookies(cookieSessionID); sessionID != "" {
		authCtx, err := h.sessions.Authenticate(ctx, device.ID, deviceSecret, sessionID, rc)
		if err == nil {
			out.User = &dto.UserOutput{
				ID:        authCtx.User.ID,
				FirstName: authCtx.User.FirstName,
				LastName:  authCtx.User.LastName,
				ImageURL:  authCtx.User.ImageURL,
			}
		} else if autherror.KindOf(err) != autherror.KindUnauthorized {
			return h.fail(c, err)
		} else {
			// A rejected session still came from a live device; its use
			// gets recorded like an anonymous boot.
			if _, err := h.sessions.RecordDeviceUse(ctx, device, rc, nil); err != nil {
				return h.fail(c, err)
			}
		}
	} else {
		if _, err := h.sessions.RecordDeviceUse(ctx, device, rc, nil); err != nil {
			return h.fail(c, err)
		}
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Start(c *fiber.Ctx) error {
	var input dto.StartInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	rc := requestContext(c)
	input.IPAddress = rc.IPAddress
	input.UserAgent = rc.UserAgent
	input.DeviceID = c.Cookies(cookieDeviceID)
	input.DeviceSecret = c.Cookies(cookieDeviceSecret)

	device, newSecret, err := h.sessions.EnsureDevice(c.Context(), input.DeviceID, input.DeviceSecret, rc)
	if err != nil {
		return h.fail(c, err)
	}
	if newSecret != "" {
		setDeviceCookies(c, device.ID, newSecret)
	}

	out, err := h.intents.Start(c.Context(), input, device)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) GetIntent(c *fiber.Ctx) error {
	ref := dto.IntentRef{
		IntentID:     c.Query("intent_id"),
		IntentSecret: c.Get("X-Intent-Secret"),
	}
	out, err := h.intents.Get(c.Context(), ref)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) VerifyStep(c *fiber.Ctx) error {
	var input dto.VerifyStepInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	out, err := h.intents.VerifyStep(c.Context(), input)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) ResendStep(c *fiber.Ctx) error {
	var input dto.ResendStepInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.intents.ResendStep(c.Context(), input); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) VerifyCaptcha(c *fiber.Ctx) error {
	var input dto.VerifyCaptchaInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IPAddress = c.IP()

	out, err := h.intents.VerifyCaptcha(c.Context(), input)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var input dto.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	out, err := h.intents.CreateUser(c.Context(), input)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AuthHandler) Complete(c *fiber.Ctx) error {
	var input dto.CompleteInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	out, err := h.intents.Complete(c.Context(), input)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) StartSSO(c *fiber.Ctx) error {
	var input struct {
		dto.IntentRef
		TenantID string `json:"tenant_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	url, err := h.intents.StartSSO(c.Context(), input.IntentRef, input.TenantID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"url": url})
}

func (h *AuthHandler) CompleteSSO(c *fiber.Ctx) error {
	out, err := h.intents.CompleteSSO(c.Context(), c.Query("state"), c.Query("auth_id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) StartOAuth(c *fiber.Ctx) error {
	var input struct {
		dto.IntentRef
		Provider string `json:"provider"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	url, err := h.intents.StartOAuth(c.Context(), input.IntentRef, input.Provider)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"url": url})
}

func (h *AuthHandler) CompleteOAuth(c *fiber.Ctx) error {
	out, err := h.intents.CompleteOAuth(c.Context(), c.Query("state"), c.Query("code"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Exchange(c *fiber.Ctx) error {
	var input dto.ExchangeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.DeviceID = c.Cookies(cookieDeviceID)
	input.DeviceSecret = c.Cookies(cookieDeviceSecret)
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	out, err := h.sessions.Exchange(c.Context(), input)
	if err != nil {
		return h.fail(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     cookieSessionID,
		Value:    out.SessionID,
		Expires:  time.Unix(out.ExpiresAt, 0),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	authCtx, err := h.authenticate(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.sessions.Logout(c.Context(), authCtx, requestContext(c)); err != nil {
		return h.fail(c, err)
	}
	c.ClearCookie(cookieSessionID)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) CheckAppAccess(c *fiber.Ctx) error {
	authCtx, err := h.authenticate(c)
	if err != nil {
		return h.fail(c, err)
	}
	allowed, err := h.access.CheckAppAccess(c.Context(), authCtx.User.ID, c.Params("appID"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"allowed": allowed})
}

func (h *AuthHandler) CheckSurfaceAccess(c *fiber.Ctx) error {
	authCtx, err := h.authenticate(c)
	if err != nil {
		return h.fail(c, err)
	}
	allowed, err := h.access.CheckSurfaceAccess(c.Context(), authCtx.User.ID, c.Params("appID"), c.Params("surfaceID"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"allowed": allowed})
}

func (h *AuthHandler) CheckGroupAccess(c *fiber.Ctx) error {
	authCtx, err := h.authenticate(c)
	if err != nil {
		return h.fail(c, err)
	}
	allowed, err := h.access.CheckAccess(c.Context(), authCtx.User.ID, c.Params("groupID"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"allowed": allowed})
}

func (h *AuthHandler) authenticate(c *fiber.Ctx) (*domain.AuthContext, error) {
	return h.sessions.Authenticate(
		c.Context(),
		c.Cookies(cookieDeviceID),
		c.Cookies(cookieDeviceSecret),
		c.Cookies(cookieSessionID),
		requestContext(c),
	)
}

func setDeviceCookies(c *fiber.Ctx, deviceID, secret string) {
	expires := time.Now().Add(365 * 24 * time.Hour)
	c.Cookie(&fiber.Cookie{
		Name: cookieDeviceID, Value: deviceID, Expires: expires,
		HTTPOnly: true, Secure: true, SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name: cookieDeviceSecret, Value: secret, Expires: expires,
		HTTPOnly: true, Secure: true, SameSite: fiber.CookieSameSiteLaxMode,
	})
}
