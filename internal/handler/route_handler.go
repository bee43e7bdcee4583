package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"Voyage-App/internal/application"
)

// RouteHandler 行程ルートの閲覧に関するHTTPハンドラー
type RouteHandler struct {
	routesService application.RoutesService
}

// NewRouteHandler RouteHandlerの新しいインスタンスを作成
func NewRouteHandler(routesService application.RoutesService) *RouteHandler {
	return &RouteHandler{
		routesService: routesService,
	}
}

// ListRoutes GET /routes - ルート概要の一覧を取得
func (h *RouteHandler) ListRoutes(c *gin.Context) {
	limit, offset, ok := parsePageParams(c)
	if !ok {
		return
	}

	routes, err := h.routesService.ListRoutes(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to list routes: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// GetRouteDetail GET /routes/:id - ルートの詳細を取得
func (h *RouteHandler) GetRouteDetail(c *gin.Context) {
	routeID := c.Param("id")
	if routeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Route ID is required",
		})
		return
	}

	doc, err := h.routesService.GetRouteDetail(c.Request.Context(), routeID)
	if err != nil {
		if strings.Contains(err.Error(), "見つかりません") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Route not found: " + routeID,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get route detail: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// parsePageParams limit/offsetクエリの解析。不正値は400を返してfalse
func parsePageParams(c *gin.Context) (int, int, bool) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "limit must be a positive integer",
			})
			return 0, 0, false
		}
		limit = n
	}

	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "offset must be a non-negative integer",
			})
			return 0, 0, false
		}
		offset = n
	}

	return limit, offset, true
}
