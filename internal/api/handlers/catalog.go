package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexusshop/storefront/internal/catalog"
	"github.com/nexusshop/storefront/internal/domain"
	"github.com/nexusshop/storefront/internal/service"
)

// HandleListCategories handles GET /v1/categories
func HandleListCategories(sessions *service.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tr := translatorFor(c, sessions)

		list := catalog.Categories()
		out := make([]catalog.CategoryInfo, 0, len(list))
		for _, cat := range list {
			out = append(out, catalog.CategoryInfo{ID: cat.ID, Name: tr.T("category." + cat.ID)})
		}
		c.JSON(http.StatusOK, gin.H{"categories": out})
	}
}

// HandleListProducts handles GET /v1/products?category=&sort=
func HandleListProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", domain.CategoryAll)
		sortBy := catalog.SortOption(c.DefaultQuery("sort", string(catalog.SortFeatured)))
		if !sortBy.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort option"})
			return
		}

		products := catalog.Sort(catalog.ByCategory(category), sortBy)
		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"count":    len(products),
		})
	}
}

// HandleGetProduct handles GET /v1/products/:id
func HandleGetProduct(sessions *service.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := catalog.ByID(c.Param("id"))
		if !ok {
			tr := translatorFor(c, sessions)
			c.JSON(http.StatusNotFound, gin.H{"error": tr.T("product.notFound")})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
