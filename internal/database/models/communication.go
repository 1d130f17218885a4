package models

import (
	"time"

	"github.com/google/uuid"
)

// Communication is one logged contact event: "we contacted company X via
// method Y on date Z". CompanyName is a snapshot of the company name at
// creation time and is intentionally never re-synced after a rename.
//
// CompanyID carries no foreign-key constraint: deleting a company must leave
// its historical communications intact, orphaned company IDs are permitted.
type Communication struct {
	BaseModel
	CompanyID         uuid.UUID `json:"companyId" gorm:"type:uuid;not null;index"`
	CompanyName       string    `json:"companyName" gorm:"size:200;not null"`
	CommunicationType string    `json:"communicationType" gorm:"size:100;not null"`
	CommunicationDate time.Time `json:"communicationDate" gorm:"not null"`
	Notes             string    `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for Communication
func (Communication) TableName() string {
	return "communications"
}
