package models

// Method is a configurable communication channel definition, e.g. "Email" or
// "Phone Call". Sequence is the intended cadence order for multi-step
// outreach plans; uniqueness across methods is not enforced.
type Method struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description" gorm:"size:500;not null"`
	Sequence    int    `json:"sequence" gorm:"not null"`
	Mandatory   bool   `json:"mandatory" gorm:"not null"`
}

// TableName returns the table name for Method
func (Method) TableName() string {
	return "methods"
}
