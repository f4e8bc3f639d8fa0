package size

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Create size (ADMIN)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name   string   `json:"name"`
		Values []string `json:"values"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	size, err := h.service.Create(c.Request.Context(), req.Name, req.Values)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, size)
}

// --------------------------------------------------
// Read sizes
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	size, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, size)
}

func (h *Handler) List(c *gin.Context) {
	sizes, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sizes": sizes})
}

// --------------------------------------------------
// Update / delete are intentionally not implemented:
// sizes are immutable once referenced.
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	err := apperr.New(apperr.NotImplemented, "Updating sizes is not supported.")
	c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
}

func (h *Handler) Delete(c *gin.Context) {
	err := apperr.New(apperr.NotImplemented, "Deleting sizes is not supported.")
	c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
}
