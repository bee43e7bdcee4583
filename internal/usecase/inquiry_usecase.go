package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"Voyage-App/internal/domain/model"
	"Voyage-App/internal/domain/repository"
)

type InquiryUseCase interface {
	// SubmitInquiry は問い合わせを検証してFirestoreに保存し、発行したIDを返す
	SubmitInquiry(ctx context.Context, req *model.InquiryRequest) (*model.Inquiry, error)

	// GetInquiry は指定されたIDの問い合わせを取得する
	GetInquiry(ctx context.Context, id string) (*model.Inquiry, error)
}

// inquiryUseCaseImpl はInquiryUseCaseの実装
type inquiryUseCaseImpl struct {
	inquiryRepo repository.InquiryRepository
}

// NewInquiryUseCase は新しいInquiryUseCaseインスタンスを作成
func NewInquiryUseCase(inquiryRepo repository.InquiryRepository) InquiryUseCase {
	return &inquiryUseCaseImpl{
		inquiryRepo: inquiryRepo,
	}
}

func (u *inquiryUseCaseImpl) SubmitInquiry(ctx context.Context, req *model.InquiryRequest) (*model.Inquiry, error) {
	if err := validateInquiryRequest(req); err != nil {
		return nil, fmt.Errorf("リクエストの検証失敗: %w", err)
	}

	inquiry := &model.Inquiry{
		ID:          fmt.Sprintf("inq_%s", uuid.New().String()),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       req.Phone,
		Message:     strings.TrimSpace(req.Message),
		RouteID:     req.RouteID,
		TravelDates: req.TravelDates,
		CreatedAt:   time.Now().UTC(),
	}

	if err := u.inquiryRepo.Save(ctx, inquiry); err != nil {
		return nil, err
	}

	log.Printf("🚀 問い合わせ受付: %s (route=%v)", inquiry.ID, inquiry.RouteID)
	return inquiry, nil
}

func (u *inquiryUseCaseImpl) GetInquiry(ctx context.Context, id string) (*model.Inquiry, error) {
	if id == "" {
		return nil, fmt.Errorf("問い合わせIDは必須です")
	}
	return u.inquiryRepo.GetByID(ctx, id)
}

// validateInquiryRequest リクエストのバリデーション
func validateInquiryRequest(req *model.InquiryRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("氏名は必須です")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("メールアドレスは必須です")
	}
	if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return fmt.Errorf("メールアドレスの形式が不正です: %s", email)
	}
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("相談内容は必須です")
	}
	return nil
}
