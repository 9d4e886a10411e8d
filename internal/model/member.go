// Package model defines the database entities.
// This file defines the member model, the club's registry of participants.
package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Member is one registered participant of the savings club.
// Maps to the members table.
type Member struct {
	// ID is the club-issued member identifier and primary key.
	// Format: PHSC + intake period (YYMM) + zero-padded 3-digit sequence,
	// e.g. "PHSC2601002". Sequence numbers are reallocated after deletion.
	ID string `gorm:"column:id;primaryKey;type:varchar(20)" json:"id"`

	// Name is the member's display name.
	Name string `gorm:"column:name;type:varchar(100);not null" json:"name"`

	// IDNumber is the 13-digit national identity number.
	IDNumber string `gorm:"column:id_number;type:varchar(13);not null" json:"idNumber"`

	// Phone is the contact number, free format.
	Phone string `gorm:"column:phone;type:varchar(20)" json:"phone"`

	// Email is the login identity, unique across the club.
	Email string `gorm:"column:email;type:varchar(100);uniqueIndex;not null" json:"email"`

	// Password stores the bcrypt hash, never the plaintext.
	Password string `gorm:"column:password;type:varchar(255);not null" json:"-"`

	// Status is the membership state, e.g. "Active".
	Status string `gorm:"column:status;type:varchar(20);default:Active" json:"status"`

	// Role is either "admin" or "member".
	Role string `gorm:"column:role;type:varchar(20);default:member" json:"role"`

	// JoinDate is the date the member was registered.
	JoinDate time.Time `gorm:"column:join_date;type:date" json:"joinDate"`

	// Banking details used for payouts.
	BankName      string `gorm:"column:bank_name;type:varchar(50)" json:"bankName"`
	AccountHolder string `gorm:"column:account_holder;type:varchar(100)" json:"accountHolder"`
	AccountNumber string `gorm:"column:account_number;type:varchar(20)" json:"accountNumber"`
	BranchCode    string `gorm:"column:branch_code;type:varchar(10)" json:"branchCode"`

	// PhotoURL points at the stored profile photo, empty when none is set.
	PhotoURL string `gorm:"column:photo_url;type:varchar(255)" json:"photoUrl"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`

	// RawPassword receives a plaintext password from the caller and is
	// hashed into Password by the BeforeSave hook. Never persisted.
	RawPassword string `gorm:"-" json:"-"`
}

// TableName pins the table name instead of relying on pluralisation rules.
func (Member) TableName() string {
	return "members"
}

// BeforeSave hashes RawPassword into Password when one was supplied, so
// callers set the plaintext and never touch bcrypt directly.
func (m *Member) BeforeSave(tx *gorm.DB) (err error) {
	if m.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(m.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		m.Password = string(hash)
		m.RawPassword = ""
	}
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (m *Member) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(plaintext))
	return err == nil
}
