package ingredient

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
// Create ingredient (ADMIN)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name       string          `json:"name"`
		UniqueName string          `json:"unique_name"`
		Size       string          `json:"size"`
		Price      []pricing.Entry `json:"price"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ing, err := h.service.Create(
		c.Request.Context(),
		req.Name,
		req.UniqueName,
		req.Size,
		req.Price,
	)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ing)
}

// --------------------------------------------------
// Read ingredients
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	ing, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ing)
}

func (h *Handler) List(c *gin.Context) {
	filter := Filter{
		Name: c.Query("name"),
		Size: c.Query("size"),
	}

	ings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": ings})
}

// --------------------------------------------------
// Update / delete are intentionally not implemented.
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	err := apperr.New(apperr.NotImplemented, "Updating ingredients is not supported.")
	c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
}

func (h *Handler) Delete(c *gin.Context) {
	err := apperr.New(apperr.NotImplemented, "Deleting ingredients is not supported.")
	c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
}
