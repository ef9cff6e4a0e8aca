package auth

type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	CompanyName string `json:"company_name"`
	Password    string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type UserPublic struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	CompanyName      string `json:"company_name,omitempty"`
	SubscriptionTier string `json:"subscription_tier"`
	CreatedAt        string `json:"created_at"`
}
