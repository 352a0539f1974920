package api

import (
	"errors"
	"net/http"

	reqdto "shoestore-api/internal/handler/dto/request"
	resdto "shoestore-api/internal/handler/dto/response"
	"shoestore-api/internal/handler/middleware"
	"shoestore-api/internal/pkg/errs"
	"shoestore-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
}

func NewCartHandler(cartCommands commands.CartCommands) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
	}
}

// @Summary Get cart
// @Description Get the current user's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cart, err := h.cartCommands.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(cart))
}

// @Summary Add cart item
// @Description Add a product to the cart, merging with a matching line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartLineRequest true "Cart item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cart, err := h.cartCommands.AddLine(c.Request.Context(), userID, req.ProductID, req.Size, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, errs.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must be positive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(cart))
}

// @Summary Update cart item quantity
// @Description Set a cart line's quantity; zero removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart line ID"
// @Param request body reqdto.SetCartQuantityRequest true "Quantity request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [patch]
func (h *CartHandler) UpdateItemQuantity(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart line ID format",
		})
		return
	}

	var req reqdto.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cart, err := h.cartCommands.SetQuantity(c.Request.Context(), userID, lineID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCartLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart line not found",
			})
		case errors.Is(err, errs.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity cannot be negative",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(cart))
}

// @Summary Remove cart item
// @Description Remove a line from the cart; removing an absent line succeeds
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart line ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart line ID format",
		})
		return
	}

	cart, err := h.cartCommands.RemoveLine(c.Request.Context(), userID, lineID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(cart))
}

// @Summary Clear cart
// @Description Remove every line from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cart, err := h.cartCommands.Clear(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(cart))
}
