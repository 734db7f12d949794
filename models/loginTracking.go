package models

import "gorm.io/gorm"

// LoginTracking records each successful login for auditing. Observational
// only; nothing reads it on the request path.
type LoginTracking struct {
	gorm.Model
	AccountID uint   `json:"account_id" gorm:"index"`
	Role      string `json:"role"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}
