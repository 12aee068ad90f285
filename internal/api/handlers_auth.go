package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutritrack/internal/services"
)

type credentialsInput struct {
	UserID   string `json:"user_id" form:"user_id"`
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	var credentials credentialsInput
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}
	credentials.UserID = strings.TrimSpace(credentials.UserID)
	return credentials, nil
}

// SetupStatus reports whether the store still needs its first seed, and the
// claimable ids the login picker lists.
func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	required, err := handler.setup.RequiresInitialSeed()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to read setup status")
	}
	ids, err := handler.auth.ClaimableUserIDs()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list users")
	}
	return c.JSON(fiber.Map{"requires_seed": required, "user_ids": ids})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	switch err := handler.auth.Register(credentials.UserID, credentials.Name, credentials.Password); {
	case err == nil:
	case errors.Is(err, services.ErrUnknownUser):
		return apiError(c, fiber.StatusNotFound, "unknown user id")
	case errors.Is(err, services.ErrAlreadyRegistered):
		return apiError(c, fiber.StatusConflict, "account already claimed")
	case errors.Is(err, services.ErrEmptyName):
		return apiError(c, fiber.StatusBadRequest, "name is required")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters with upper, lower and digit")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to register")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.loginLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts, try again later")
	}

	user, err := handler.auth.Login(credentials.UserID, credentials.Password)
	if err != nil {
		handler.loginLimiter.recordFailure(limiterKey, now)
		// Unknown id, unregistered account and wrong password read the same
		// to the caller.
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"ok": true, "user_id": user.ID})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	if err := handler.auth.Logout(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to log out")
	}
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// DeleteAccount removes the logged-in user and every dependent row, then
// ends the session. The id becomes claimable again only after a fresh seed.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user := currentUser(c)

	if err := handler.repositories.Users.DeleteWithRelatedData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}
	if err := handler.auth.Logout(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to end session")
	}
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
