package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"

	"Voyage-App/internal/domain/model"
	"Voyage-App/internal/domain/repository"
)

const inquiryTTLDays = 180

// FirestoreInquiryRepository Firestoreを使用した問い合わせリポジトリ
type FirestoreInquiryRepository struct {
	client *firestore.Client
}

// NewFirestoreInquiryRepository 新しいFirestoreInquiryRepositoryインスタンスを作成
func NewFirestoreInquiryRepository(client *firestore.Client) repository.InquiryRepository {
	return &FirestoreInquiryRepository{
		client: client,
	}
}

// Save は問い合わせを保持期間付きでFirestoreに保存する
func (r *FirestoreInquiryRepository) Save(ctx context.Context, inquiry *model.Inquiry) error {
	firestoreData := inquiry.ToFirestoreInquiry(inquiryTTLDays)

	_, err := r.client.Collection("inquiries").Doc(inquiry.ID).Set(ctx, firestoreData)
	if err != nil {
		log.Printf("❌ Failed to save inquiry %s: %v", inquiry.ID, err)
		return fmt.Errorf("問い合わせの保存に失敗しました: %w", err)
	}

	log.Printf("✅ Inquiry saved: %s (expires in %d days)", inquiry.ID, inquiryTTLDays)
	return nil
}

// GetByID は指定されたIDの問い合わせをFirestoreから取得する
func (r *FirestoreInquiryRepository) GetByID(ctx context.Context, id string) (*model.Inquiry, error) {
	doc, err := r.client.Collection("inquiries").Doc(id).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("問い合わせが見つかりません（保持期間切れまたは無効なID）: %s", id)
		}
		return nil, fmt.Errorf("問い合わせの取得に失敗しました: %w", err)
	}

	var firestoreData model.FirestoreInquiry
	if err := doc.DataTo(&firestoreData); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	return firestoreData.ToInquiry(id), nil
}
