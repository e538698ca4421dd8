package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/richchoi/hotel-system/internal/core/domain"
	"github.com/richchoi/hotel-system/internal/core/ports"
	"github.com/richchoi/hotel-system/internal/infrastructure/i18n"
)

// CatalogHandler serves the read-only display collections: services,
// partners, and the bilingual text dictionary.
type CatalogHandler struct {
	services ports.ServiceRepository
	partners ports.PartnerRepository
}

func NewCatalogHandler(services ports.ServiceRepository, partners ports.PartnerRepository) *CatalogHandler {
	return &CatalogHandler{services: services, partners: partners}
}

type serviceListResponse struct {
	Services []domain.Service `json:"services"`
	Total    int              `json:"total"`
}

type partnerListResponse struct {
	Partners []domain.Partner `json:"partners"`
	Total    int              `json:"total"`
}

// ListServices returns the service catalog.
//
// @Summary      List services
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  serviceListResponse
// @Router       /v1/services [get]
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.services.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, serviceListResponse{Services: services, Total: len(services)})
}

// ListPartners returns the partner roster.
//
// @Summary      List partners
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  partnerListResponse
// @Router       /v1/partners [get]
func (h *CatalogHandler) ListPartners(c echo.Context) error {
	partners, err := h.partners.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, partnerListResponse{Partners: partners, Total: len(partners)})
}

// Dictionary returns the flat key→string table for a language.
//
// @Summary      Translation dictionary
// @Tags         catalog
// @Produce      json
// @Param        lang  path  string  true  "Language code (EN or VN)"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /v1/i18n/{lang} [get]
func (h *CatalogHandler) Dictionary(c echo.Context) error {
	lang := domain.Language(c.Param("lang"))
	if !lang.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported language")
	}
	return c.JSON(http.StatusOK, i18n.Table(lang))
}
