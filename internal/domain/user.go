package domain

import "time"

type SubscriptionTier string

const (
	TierFree       SubscriptionTier = "free"
	TierBasic      SubscriptionTier = "basic"
	TierPremium    SubscriptionTier = "premium"
	TierEnterprise SubscriptionTier = "enterprise"
)

type User struct {
	ID               int64            `json:"id"`
	Email            string           `json:"email" validate:"required,email"`
	PasswordHash     string           `json:"-"`
	Name             string           `json:"name"`
	CompanyName      string           `json:"company_name,omitempty"`
	SubscriptionTier SubscriptionTier `json:"subscription_tier"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
