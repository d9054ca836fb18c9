package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khulna-traveller/travel-api/internal/api/metrics"
	"github.com/khulna-traveller/travel-api/internal/core/domain"
	"github.com/khulna-traveller/travel-api/internal/core/ports"
)

// ContentHandler serves one content collection. The same handler backs
// banners, plans, team members, and gallery items; the router instantiates
// it once per collection.
type ContentHandler struct {
	collection string
	service    ports.ContentService
}

func NewContentHandler(collection string, service ports.ContentService) *ContentHandler {
	return &ContentHandler{collection: collection, service: service}
}

// Create inserts a document. No schema is enforced beyond well-formed JSON;
// the store assigns the identifier.
func (h *ContentHandler) Create(c echo.Context) error {
	var doc domain.Document
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.service.Create(c.Request().Context(), doc)
	if err != nil {
		return err
	}
	metrics.StoreWritesTotal.WithLabelValues(h.collection, "insert").Inc()
	return c.JSON(http.StatusOK, res)
}

// List returns every document in the collection, in no guaranteed order.
func (h *ContentHandler) List(c echo.Context) error {
	docs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Get returns a single document; an unknown id yields a JSON null.
func (h *ContentHandler) Get(c echo.Context) error {
	doc, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// Update field-merges the payload into the document at id, creating it when
// absent. Callers rely on update doubling as create.
func (h *ContentHandler) Update(c echo.Context) error {
	var doc domain.Document
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.service.Update(c.Request().Context(), c.Param("id"), doc)
	if err != nil {
		return err
	}
	metrics.StoreWritesTotal.WithLabelValues(h.collection, "update").Inc()
	return c.JSON(http.StatusOK, res)
}

// Delete removes at most one document; a miss reports zero affected.
func (h *ContentHandler) Delete(c echo.Context) error {
	res, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.StoreWritesTotal.WithLabelValues(h.collection, "delete").Inc()
	return c.JSON(http.StatusOK, res)
}
