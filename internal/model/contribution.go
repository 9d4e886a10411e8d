// Package model defines the database entities.
// This file defines the contribution model, one monthly payment record.
package model

import (
	"database/sql"
	"time"
)

// Contribution statuses. Pending rows await admin review.
const (
	ContributionPending = "Pending"
	ContributionPaid    = "Paid"
)

// Proof is the proof-of-payment record attached to a contribution.
// Embedded into the contributions table with proof_-prefixed columns.
type Proof struct {
	// URL of the stored object.
	URL string `gorm:"column:proof_url;type:varchar(255)" json:"url"`
	// Name is the original filename as uploaded.
	Name string `gorm:"column:proof_name;type:varchar(255)" json:"name"`
	// Type is the MIME type, one of image/jpeg, image/png, application/pdf.
	Type string `gorm:"column:proof_type;type:varchar(50)" json:"type"`
	// Size in bytes.
	Size int64 `gorm:"column:proof_size" json:"size"`
	// UploadedAt is when the proof was accepted.
	UploadedAt sql.NullTime `gorm:"column:proof_uploaded_at" json:"uploadedAt"`
}

// Contribution is one monthly payment obligation/record for a member.
// Maps to the contributions table.
type Contribution struct {
	ID uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	// MemberID references the owning member; deleting the member deletes
	// its contributions.
	MemberID string `gorm:"column:member_id;type:varchar(20);index;not null" json:"memberId"`
	Member   Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"-"`

	// Month is a free-text label such as "January 2026", not a date type.
	Month string `gorm:"column:month;type:varchar(20);not null" json:"month"`

	// Amount in whole rands.
	Amount int `gorm:"column:amount;not null" json:"amount"`

	// Status is Pending or Paid.
	Status string `gorm:"column:status;type:varchar(20);default:Pending" json:"status"`

	// PaymentDate is set iff the status was Paid at the last
	// status-affecting write. Application contract, not enforced by the store.
	PaymentDate sql.NullTime `gorm:"column:payment_date" json:"paymentDate"`

	// Proof is the attached proof-of-payment record, zero when absent.
	Proof Proof `gorm:"embedded" json:"proofOfPayment"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName pins the table name.
func (Contribution) TableName() string {
	return "contributions"
}
