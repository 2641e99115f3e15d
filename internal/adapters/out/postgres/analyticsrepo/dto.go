// Package analyticsrepo stores visitors, their page views and the
// counters behind the dashboard reports.
package analyticsrepo

import (
	"time"

	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VisitorDTO struct {
	SessionKey string                   `gorm:"type:varchar(40);primaryKey"`
	Identity   uuid.UUID                `gorm:"type:uuid;not null;index"`
	UserID     *uuid.UUID               `gorm:"type:uuid;index"`
	IPAddress  string                   `gorm:"column:ip_address;type:inet;not null"`
	UserAgent  string                   `gorm:"type:text;not null;default:''"`
	StartTime  time.Time                `gorm:"not null;index"`
	ExpiryAge  int                      `gorm:"not null;default:0"`
	ExpiryTime *time.Time               `gorm:"index"`
	TimeOnSite int                      `gorm:"not null;default:0"`
	EndTime    *time.Time
	Hostname   string                   `gorm:"type:varchar(255);not null;default:''"`
	IsBot      bool                     `gorm:"not null;default:false;index"`
	Data       *analytics.UserAgentData `gorm:"type:jsonb;serializer:json"`
	PageViews  []PageViewDTO            `gorm:"foreignKey:SessionKey;constraint:OnDelete:CASCADE"`
}

func (VisitorDTO) TableName() string {
	return "tracking_visitors"
}

type PageViewDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionKey  string    `gorm:"type:varchar(40);not null;index"`
	URL         string    `gorm:"column:url;type:text;not null"`
	Referer     *string   `gorm:"type:text"`
	QueryString *string   `gorm:"type:text"`
	Method      string    `gorm:"type:varchar(16);not null"`
	ViewTime    time.Time `gorm:"not null;index"`
}

func (PageViewDTO) TableName() string {
	return "tracking_page_views"
}

type ProductRecordDTO struct {
	ProductID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	NumViews           int       `gorm:"not null;default:0"`
	NumBasketAdditions int       `gorm:"not null;default:0"`
	NumPurchases       int       `gorm:"not null;default:0;index"`
	Score              float64   `gorm:"not null;default:0"`
}

func (ProductRecordDTO) TableName() string {
	return "analytics_product_records"
}

type UserRecordDTO struct {
	UserID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	NumProductViews    int             `gorm:"not null;default:0"`
	NumBasketAdditions int             `gorm:"not null;default:0"`
	NumOrders          int             `gorm:"not null;default:0;index"`
	NumOrderLines      int             `gorm:"not null;default:0;index"`
	NumOrderItems      int             `gorm:"not null;default:0;index"`
	TotalSpent         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	DateLastOrder      *time.Time
}

func (UserRecordDTO) TableName() string {
	return "analytics_user_records"
}

type UserProductViewDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (UserProductViewDTO) TableName() string {
	return "analytics_user_product_views"
}

type UserSearchDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	Query       string     `gorm:"type:varchar(255);not null;index"`
	ResultCount int        `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"not null"`
}

func (UserSearchDTO) TableName() string {
	return "analytics_user_searches"
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func visitorFromDomain(v *analytics.Visitor) VisitorDTO {
	s := v.State()
	return VisitorDTO{
		SessionKey: s.SessionKey,
		Identity:   s.Identity.Bytes(),
		UserID:     optionalID(s.UserID),
		IPAddress:  s.IPAddress,
		UserAgent:  s.UserAgent,
		StartTime:  s.StartTime,
		ExpiryAge:  s.ExpiryAge,
		ExpiryTime: s.ExpiryTime,
		TimeOnSite: s.TimeOnSite,
		EndTime:    s.EndTime,
		Hostname:   s.Hostname,
		IsBot:      s.IsBot,
		Data:       s.Data,
	}
}

func visitorToDomain(dto VisitorDTO) (*analytics.Visitor, error) {
	identity, err := kernel.UUIDFromGoogle(dto.Identity)
	if err != nil {
		return nil, err
	}
	var userID *kernel.UUID
	if dto.UserID != nil {
		id, idErr := kernel.UUIDFromGoogle(*dto.UserID)
		if idErr != nil {
			return nil, idErr
		}
		userID = &id
	}
	return analytics.RestoreVisitor(analytics.VisitorState{
		SessionKey: dto.SessionKey,
		Identity:   identity,
		UserID:     userID,
		IPAddress:  dto.IPAddress,
		UserAgent:  dto.UserAgent,
		StartTime:  dto.StartTime,
		ExpiryAge:  dto.ExpiryAge,
		ExpiryTime: dto.ExpiryTime,
		TimeOnSite: dto.TimeOnSite,
		EndTime:    dto.EndTime,
		Hostname:   dto.Hostname,
		IsBot:      dto.IsBot,
		Data:       dto.Data,
	})
}
