package handlers

import (
	"net/http"

	"vitago/services/search"

	"github.com/gin-gonic/gin"
)

// CatalogueHandler handles GET /api/services/catalogue. An optional
// "search" query filters the tree, keeping matching leaves and the
// categories containing them.
func CatalogueHandler(c *gin.Context) {
	term := c.Query("search")
	result := search.SearchCatalogue(term)
	c.JSON(http.StatusOK, result)
}
