package profile

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/profile/derive", h.DeriveProfile)
	api.GET("/profile/ruleset", h.GetRuleset)
}

func (h *Handler) DeriveProfile(c echo.Context) error {
	var raw map[string]any
	if err := c.Bind(&raw); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "body must be a JSON object of answers")
	}
	result, err := h.svc.DeriveProfile(c.Request().Context(), raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetRuleset(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Ruleset())
}
