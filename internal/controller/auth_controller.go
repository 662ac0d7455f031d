package controller

import (
	"errors"
	"fmt"
	"os"

	"campus-ai-be/internal/dto"
	"campus-ai-be/internal/pkg/serverutils"
	"campus-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	GuestLogin(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/guest", c.GuestLogin)
	h.Get("/:provider", c.Login)
	h.Get("/:provider/callback", c.Callback)
}

func (c *authController) GuestLogin(ctx *fiber.Ctx) error {
	res, err := c.service.GuestLogin(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Guest session started", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	provider := ctx.Params("provider")

	url, err := c.service.GetLoginURL(provider)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.Redirect(url)
}

func (c *authController) Callback(ctx *fiber.Ctx) error {
	provider := ctx.Params("provider")
	code := ctx.Query("code")

	if code == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing code"))
	}

	res, err := c.service.HandleCallback(ctx.Context(), provider, code)
	if err != nil {
		var domainErr *dto.UnauthorizedDomainError
		if errors.As(err, &domainErr) {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, domainErr.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	// Redirect to the frontend with the token in the URL fragment.
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}

	return ctx.Redirect(fmt.Sprintf("%s/auth/callback#token=%s", frontendURL, res.AccessToken))
}
