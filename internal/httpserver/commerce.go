package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawfinder/internal/domain"
	"pawfinder/internal/orders"
)

func viewHandler(views ViewResolver, sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Query("path")
		if path == "" {
			path = "/"
		}
		state, sess := sessions.Current()
		c.JSON(http.StatusOK, gin.H{
			"path":    path,
			"view":    views.Resolve(path),
			"session": gin.H{"state": state.String(), "signed_in": sess != nil},
		})
	}
}

func listingsHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"listings": catalog.Listings()})
	}
}

func cartListHandler(cart CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := cart.Items()
		var total int64
		for _, it := range items {
			total += it.Price
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
	}
}

func cartAddHandler(cart CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item domain.CartItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid cart item: %v", err)})
			return
		}
		if err := cart.Add(item); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"items": cart.Items()})
	}
}

func cartRemoveHandler(cart CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Remove(c.Param("listingId"))
		c.JSON(http.StatusOK, gin.H{"items": cart.Items()})
	}
}

func cartClearHandler(cart CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Clear()
		c.JSON(http.StatusOK, gin.H{"items": []domain.CartItem{}})
	}
}

func ordersListHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"orders": svc.List()})
	}
}

// orderSubmitHandler accepts the order and answers as soon as the local
// commit is durable. The remote attempt continues in the background; the
// response never waits on it.
func orderSubmitHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in orders.SubmitInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid order payload: %v", err)})
			return
		}
		order, _, err := svc.Submit(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"order": order, "remote_pending": true})
	}
}
