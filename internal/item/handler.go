package item

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
	"github.com/kubaGzk/eaty-backend/internal/category"
	"github.com/kubaGzk/eaty-backend/internal/pricing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Create item (ADMIN)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name                  string            `json:"name"`
		Description           string            `json:"description"`
		Category              string            `json:"category"`
		NoInheritFromCategory bool              `json:"no_inherit_from_category"`
		Size                  string            `json:"size"`
		CustomComposition     string            `json:"custom_composition"`
		BasePrice             []pricing.Entry   `json:"base_price"`
		Ingredients           []ItemIngredient  `json:"ingredients"`
		ItemOptions           []category.Option `json:"item_options"`
		AvailableSides        []string          `json:"available_sides"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	it, err := h.service.Create(c.Request.Context(), CreateInput{
		Name:                  req.Name,
		Description:           req.Description,
		Category:              req.Category,
		NoInheritFromCategory: req.NoInheritFromCategory,
		Size:                  req.Size,
		CustomComposition:     req.CustomComposition,
		BasePrice:             req.BasePrice,
		Ingredients:           req.Ingredients,
		ItemOptions:           req.ItemOptions,
		AvailableSides:        req.AvailableSides,
	})
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, it)
}

// --------------------------------------------------
// Read items (price computed at query time)
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	it, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	price, err := h.service.Price(c.Request.Context(), it)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":  it,
		"price": price,
	})
}

func (h *Handler) List(c *gin.Context) {
	raw := c.Query("categories")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "categories query parameter is required"})
		return
	}

	items, err := h.service.ListByCategories(c.Request.Context(), strings.Split(raw, ","))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// Update is intentionally not implemented.
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	err := apperr.New(apperr.NotImplemented, "Updating items is not supported.")
	c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
}
