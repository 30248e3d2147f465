package model

type NewHire struct {
	BaseModel
	NewHireId  string `gorm:"column:new_hire_id" json:"newHireId"`
	FirstName  string `gorm:"column:first_name" json:"firstName"`
	LastName   string `gorm:"column:last_name" json:"lastName"`
	Zip        string `gorm:"column:zip" json:"zip"`
	Occupation string `gorm:"column:occupation" json:"occupation"`
	// Soft-deleted once reconciled into a User, never hard-deleted.
	IsActive bool `gorm:"column:is_active;default:true" json:"isActive"`
}

func (NewHire) TableName() string {
	return "t_new_hire"
}

// FullName returns "First Last" for display and matching.
func (n *NewHire) FullName() string {
	return n.FirstName + " " + n.LastName
}

type AddNewHireReq struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Zip        string `json:"zip"`
	Occupation string `json:"occupation"`
}
