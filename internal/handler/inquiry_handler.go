package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"Voyage-App/internal/domain/model"
	"Voyage-App/internal/usecase"
)

// InquiryHandler 問い合わせフォームに関するHTTPハンドラー
type InquiryHandler struct {
	inquiryUseCase usecase.InquiryUseCase
}

// NewInquiryHandler InquiryHandlerの新しいインスタンスを作成
func NewInquiryHandler(inquiryUseCase usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{
		inquiryUseCase: inquiryUseCase,
	}
}

// SubmitInquiry POST /inquiries - 問い合わせの送信
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var req model.InquiryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	inquiry, err := h.inquiryUseCase.SubmitInquiry(c.Request.Context(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "検証失敗") {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_request",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to submit inquiry: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         inquiry.ID,
		"created_at": inquiry.CreatedAt,
	})
}

// GetInquiry GET /inquiries/:id - 問い合わせの取得
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Inquiry ID is required",
		})
		return
	}

	inquiry, err := h.inquiryUseCase.GetInquiry(c.Request.Context(), id)
	if err != nil {
		if strings.Contains(err.Error(), "見つかりません") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Inquiry not found: " + id,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get inquiry: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, inquiry)
}
