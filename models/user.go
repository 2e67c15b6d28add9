package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Avatar   string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Initials string             `bson:"initials" json:"initials"`
	IsActive bool               `bson:"isActive" json:"isActive"`
}

// AsTeamMember pravi člansku kopiju korisnika za denormalizovane rostere.
func (u User) AsTeamMember(role TeamRole) TeamMember {
	return TeamMember{
		ID:       u.ID.Hex(),
		Name:     u.Name,
		Email:    u.Email,
		Avatar:   u.Avatar,
		Initials: u.Initials,
		Role:     role,
	}
}
