package category

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
	"github.com/kubaGzk/eaty-backend/internal/pricing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Create category (ADMIN)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name              string           `json:"name"`
		Size              string           `json:"size"`
		CustomComposition string           `json:"custom_composition"`
		BasePrice         []pricing.Entry  `json:"base_price"`
		BaseIngredients   []BaseIngredient `json:"base_ingredients"`
		Options           []Option         `json:"options"`
		AvailableSides    []string         `json:"available_sides"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cat, err := h.service.Create(c.Request.Context(), CreateInput{
		Name:              req.Name,
		Size:              req.Size,
		CustomComposition: req.CustomComposition,
		BasePrice:         req.BasePrice,
		BaseIngredients:   req.BaseIngredients,
		Options:           req.Options,
		AvailableSides:    req.AvailableSides,
	})
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cat)
}

// --------------------------------------------------
// Read categories
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	cat, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cat)
}

func (h *Handler) List(c *gin.Context) {
	cats, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

// --------------------------------------------------
// Update is intentionally not implemented.
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	err := apperr.New(apperr.NotImplemented, "Updating categories is not supported.")
	c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
}
