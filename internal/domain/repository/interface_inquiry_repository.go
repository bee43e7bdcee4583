package repository

import (
	"context"

	"Voyage-App/internal/domain/model"
)

// InquiryRepository 問い合わせフォームの送信内容を保存する
type InquiryRepository interface {
	Save(ctx context.Context, inquiry *model.Inquiry) error
	GetByID(ctx context.Context, id string) (*model.Inquiry, error)
}
