package models

import "time"

// Company is a partner organization that must be contacted on a recurring
// cadence. Periodicity is the number of days between required communications;
// the UI offers 1-14 but the model only requires a positive value.
type Company struct {
	BaseModel
	CompanyName  string    `json:"companyName" gorm:"size:200;not null"`
	Location     string    `json:"location" gorm:"size:200;not null"`
	LinkedIn     string    `json:"linkedin" gorm:"size:500"`
	Email        string    `json:"email" gorm:"size:200;uniqueIndex;not null"`
	PhoneNumbers string    `json:"phoneNumbers" gorm:"size:200"`
	Comments     string    `json:"comments" gorm:"type:text"`
	Periodicity  int       `json:"periodicity" gorm:"not null;default:14"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
