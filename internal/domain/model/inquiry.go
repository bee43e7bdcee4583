package model

import "time"

// InquiryRequest 相談フォームからの送信内容
type InquiryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       *string `json:"phone,omitempty"`
	Message     string  `json:"message" validate:"required"`
	RouteID     *string `json:"route_id,omitempty"`     // 相談対象のルート（任意）
	TravelDates *string `json:"travel_dates,omitempty"` // 希望時期（自由記述）
}

// Inquiry 保存用の問い合わせレコード
type Inquiry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Message     string    `json:"message"`
	RouteID     *string   `json:"route_id,omitempty"`
	TravelDates *string   `json:"travel_dates,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// FirestoreInquiry Firestore保存用の構造体（TTL付き）
type FirestoreInquiry struct {
	Name        string    `firestore:"name"`
	Email       string    `firestore:"email"`
	Phone       *string   `firestore:"phone,omitempty"`
	Message     string    `firestore:"message"`
	RouteID     *string   `firestore:"route_id,omitempty"`
	TravelDates *string   `firestore:"travel_dates,omitempty"`
	CreatedAt   time.Time `firestore:"created_at"`
	ExpireAt    time.Time `firestore:"expireAt"`
}

// ToFirestoreInquiry は保持期間（日数）を付けてFirestore用に変換する
func (i *Inquiry) ToFirestoreInquiry(ttlDays int) *FirestoreInquiry {
	return &FirestoreInquiry{
		Name:        i.Name,
		Email:       i.Email,
		Phone:       i.Phone,
		Message:     i.Message,
		RouteID:     i.RouteID,
		TravelDates: i.TravelDates,
		CreatedAt:   i.CreatedAt,
		ExpireAt:    i.CreatedAt.Add(time.Duration(ttlDays) * 24 * time.Hour),
	}
}

// ToInquiry はFirestoreのドキュメントからAPI応答用のレコードに戻す
func (f *FirestoreInquiry) ToInquiry(id string) *Inquiry {
	return &Inquiry{
		ID:          id,
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		Message:     f.Message,
		RouteID:     f.RouteID,
		TravelDates: f.TravelDates,
		CreatedAt:   f.CreatedAt,
	}
}
