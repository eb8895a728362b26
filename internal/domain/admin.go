package domain

import "time"

// AdminPasswordTTL is how long an issued admin password stays redeemable
const AdminPasswordTTL = 10 * time.Minute

// AdminPassword is a one-time credential that upgrades a user to admin
type AdminPassword struct {
	ID        int64
	Password  string
	Used      bool
	CreatedBy int64
	UsedBy    int64
	CreatedAt time.Time
}

// Verification stores the identity data a user submitted once
type Verification struct {
	ID        int64
	UserID    int64
	Instagram string
	PhotoID   string
	CreatedAt time.Time
}
