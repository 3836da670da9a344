package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"plantcart/internal/adapter/http/dto/request"
	"plantcart/internal/adapter/http/dto/response"
	"plantcart/internal/usecase"
	"plantcart/pkg"
)

// ProductHandler handles catalog reads and the admin CRUD endpoints.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// List returns the full catalog.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[products][handler] list failed err=%v", err)
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// GetByID returns a single product.
func (h *ProductHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	product, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[products][handler] get failed product_id=%s err=%v", id, err)
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

// Save creates or replaces a product. A missing id means "generate one".
func (h *ProductHandler) Save(c *gin.Context) {
	req, ok := bindProductRequest(c)
	if !ok {
		return
	}

	log.Printf("[products][handler] save start product_id=%s name=%s", req.ID, req.Name)
	product, err := h.usecase.Save(c.Request.Context(), toProductInput(req))
	if err != nil {
		log.Printf("[products][handler] save failed product_id=%s err=%v", req.ID, err)
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[products][handler] save success product_id=%s", product.ID)
	c.JSON(http.StatusOK, response.FromProduct(product))
}

// Update replaces the product at the path id; the body id is ignored.
func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")
	req, ok := bindProductRequest(c)
	if !ok {
		return
	}

	log.Printf("[products][handler] update start product_id=%s", id)
	product, err := h.usecase.Update(c.Request.Context(), id, toProductInput(req))
	if err != nil {
		log.Printf("[products][handler] update failed product_id=%s err=%v", id, err)
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

// Delete removes a product from the catalog.
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[products][handler] delete start product_id=%s", id)
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[products][handler] delete failed product_id=%s err=%v", id, err)
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func bindProductRequest(c *gin.Context) (request.ProductRequest, bool) {
	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[products][handler] invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return request.ProductRequest{}, false
	}
	return req, true
}

func toProductInput(req request.ProductRequest) usecase.ProductInput {
	return usecase.ProductInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Qty:         req.Qty,
		Image:       req.Image,
		Images:      req.Images,
	}
}

func mapProductError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", verr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT", "Invalid product", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
