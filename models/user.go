package models

import (
	"time"
)

// Staff group names. Membership in one of these is the authorization
// signal beyond "authenticated" and "self".
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery crew"
)

type Group struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	IsSuperuser  bool      `json:"-" gorm:"default:false"`
	Groups       []Group   `json:"groups,omitempty" gorm:"many2many:user_groups"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InGroup reports whether the user's memberships include name.
// Groups must have been preloaded.
func (u *User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

// IsManager reports full staff authority: the Manager group or a superuser.
func (u *User) IsManager() bool {
	return u.IsSuperuser || u.InGroup(GroupManager)
}

func (u *User) IsDeliveryCrew() bool {
	return u.InGroup(GroupDeliveryCrew)
}
