package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"plantcart/internal/adapter/http/dto/response"
	"plantcart/internal/usecase"
	"plantcart/pkg"
)

// CategoryHandler serves the storefront category list.

type CategoryHandler struct {
	usecase usecase.ICategoryUseCase
}

func NewCategoryHandler(uc usecase.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{usecase: uc}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[categories][handler] list failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategories(categories))
}
