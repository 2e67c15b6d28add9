package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamRole string

const (
	RoleAdmin  TeamRole = "Admin"
	RoleMember TeamRole = "Member"
)

func (r TeamRole) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

type Team struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	OwnerID    string             `json:"ownerId" bson:"ownerId"`
	Members    []TeamMember       `json:"members" bson:"members"`
	MemberIDs  []string           `json:"memberIds" bson:"memberIds"`
	ProjectIDs []string           `json:"projectIds" bson:"projectIds"`

	Extra bson.M `json:"-" bson:",inline"`
}
