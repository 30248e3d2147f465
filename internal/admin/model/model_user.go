package model

import (
	"strings"
	"time"
)

// User role values.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User status values.
const (
	UserStatusPending  = "pending"
	UserStatusApproved = "approved"
	UserStatusDisabled = "disabled"
)

type User struct {
	BaseModel
	UserId      string     `gorm:"column:user_id" json:"userId"`
	Email       string     `gorm:"column:email" json:"email"`
	DisplayName string     `gorm:"column:display_name" json:"displayName"`
	FirstName   string     `gorm:"column:first_name" json:"firstName"`
	LastName    string     `gorm:"column:last_name" json:"lastName"`
	Password    string     `gorm:"column:password" json:"-"`
	Avatar      string     `gorm:"column:avatar" json:"avatar"`
	Role        string     `gorm:"column:role;default:user" json:"role"`
	Status      string     `gorm:"column:status;default:pending" json:"status"`
	Birthday    *time.Time `gorm:"column:birthday" json:"birthday,omitempty"`
	Occupation  string     `gorm:"column:occupation" json:"occupation"`
	Zip         string     `gorm:"column:zip" json:"zip"`

	// approval audit fields
	ApprovedBy string     `gorm:"column:approved_by" json:"approvedBy,omitempty"`
	ApprovedAt *time.Time `gorm:"column:approved_at" json:"approvedAt,omitempty"`

	// provenance stamped by reconciliation
	OriginNewHireId   string `gorm:"column:origin_new_hire_id" json:"originNewHireId,omitempty"`
	OriginNewHireName string `gorm:"column:origin_new_hire_name" json:"originNewHireName,omitempty"`

	// question rate limiting, one per calendar day
	LastQuestionAt *time.Time `gorm:"column:last_question_at" json:"lastQuestionAt,omitempty"`
}

func (User) TableName() string {
	return "t_user"
}

// IsMasterAdmin reports whether the user is the configured master admin.
// Derived from email comparison, never stored.
func (u *User) IsMasterAdmin(masterEmail string) bool {
	return masterEmail != "" && strings.EqualFold(u.Email, masterEmail)
}

type Register struct {
	UserId      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Password    string `json:"password"`
	Birthday    string `json:"birthday"`
	Zip         string `json:"zip"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResp struct {
	UserInfo UserInfo          `json:"userInfo"`
	Token    map[string]string `json:"token"`
	ExpireAt int64             `json:"-"`
	CreateAt int64             `json:"-"`
}

type UserInfo struct {
	UserId      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Avatar      string `json:"avatar"`
	Role        string `json:"role"`
	Status      string `json:"status"`
}

// TokenInfo token information stored in Redis
type TokenInfo struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpireAt     int64  `json:"expireAt"`
	CreateAt     int64  `json:"createAt"`
}
