package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"Voyage-App/internal/application"
)

// CatalogHandler 目的地・景点・餐厅・菜品・酒店の閲覧に関するHTTPハンドラー
type CatalogHandler struct {
	catalogService application.CatalogService
}

// NewCatalogHandler CatalogHandlerの新しいインスタンスを作成
func NewCatalogHandler(catalogService application.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListDestinations GET /destinations - 目的地の一覧を取得
func (h *CatalogHandler) ListDestinations(c *gin.Context) {
	destinations, err := h.catalogService.ListDestinations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to list destinations: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"destinations": destinations})
}

// GetDestination GET /destinations/:id - 目的地の詳細を取得
func (h *CatalogHandler) GetDestination(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Destination ID is required",
		})
		return
	}

	destination, err := h.catalogService.GetDestination(c.Request.Context(), id)
	if err != nil {
		if strings.Contains(err.Error(), "見つかりません") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Destination not found: " + id,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get destination: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, destination)
}

// ListAttractions GET /attractions - 景点の一覧を取得
func (h *CatalogHandler) ListAttractions(c *gin.Context) {
	limit, offset, ok := parsePageParams(c)
	if !ok {
		return
	}

	attractions, err := h.catalogService.ListAttractions(c.Request.Context(), c.Query("destination_id"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to list attractions: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attractions": attractions})
}

// NearbyAttractions GET /attractions/nearby - 指定地点の周辺景点を取得
func (h *CatalogHandler) NearbyAttractions(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lat must be a valid number",
		})
		return
	}

	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lng must be a valid number",
		})
		return
	}

	radius := 0
	if v := c.Query("radius"); v != "" {
		radius, err = strconv.Atoi(v)
		if err != nil || radius <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "radius must be a positive integer (meters)",
			})
			return
		}
	}

	attractions, err := h.catalogService.NearbyAttractions(c.Request.Context(), lat, lng, radius)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get nearby attractions: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attractions": attractions})
}

// ListRestaurants GET /restaurants - 餐厅の一覧を取得
func (h *CatalogHandler) ListRestaurants(c *gin.Context) {
	limit, offset, ok := parsePageParams(c)
	if !ok {
		return
	}

	restaurants, err := h.catalogService.ListRestaurants(c.Request.Context(), c.Query("destination_id"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to list restaurants: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// ListFoods GET /foods - 菜品の一覧を取得
func (h *CatalogHandler) ListFoods(c *gin.Context) {
	limit, offset, ok := parsePageParams(c)
	if !ok {
		return
	}

	foods, err := h.catalogService.ListFoods(c.Request.Context(), c.Query("destination_id"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to list foods: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

// ListHotels GET /hotels - 酒店の一覧を取得
func (h *CatalogHandler) ListHotels(c *gin.Context) {
	limit, offset, ok := parsePageParams(c)
	if !ok {
		return
	}

	hotels, err := h.catalogService.ListHotels(c.Request.Context(), c.Query("destination_id"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to list hotels: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}
