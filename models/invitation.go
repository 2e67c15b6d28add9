package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

type InvitationTarget string

const (
	TargetTeam    InvitationTarget = "team"
	TargetProject InvitationTarget = "project"
)

type Invitation struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TargetType     InvitationTarget   `json:"targetType" bson:"targetType"`
	TargetID       string             `json:"targetId" bson:"targetId"`
	TargetName     string             `json:"targetName" bson:"targetName"`
	InviterName    string             `json:"inviterName" bson:"inviterName"`
	RecipientEmail string             `json:"recipientEmail" bson:"recipientEmail"`
	Status         InvitationStatus   `json:"status" bson:"status"`
	CreatedAt      *time.Time         `json:"createdAt,omitempty" bson:"createdAt,omitempty"`

	Extra bson.M `json:"-" bson:",inline"`
}
