package composition

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
// Create custom composition (ADMIN)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name        string                  `json:"name"`
		Size        string                  `json:"size"`
		Groups      []Group                 `json:"groups"`
		Ingredients []CompositionIngredient `json:"ingredients"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cc, err := h.service.Create(
		c.Request.Context(),
		req.Name,
		req.Size,
		req.Groups,
		req.Ingredients,
	)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cc)
}

// --------------------------------------------------
// Read custom compositions
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	cc, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cc)
}

func (h *Handler) List(c *gin.Context) {
	ccs, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"custom_compositions": ccs})
}

// --------------------------------------------------
// Update is intentionally not implemented.
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	err := apperr.New(apperr.NotImplemented, "Updating custom compositions is not supported.")
	c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
}
