package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Progress    int                `json:"progress" bson:"progress"`
	Color       string             `json:"color,omitempty" bson:"color,omitempty"`
	OwnerID     string             `json:"ownerId" bson:"ownerId"`
	MemberIDs   []string           `json:"memberIds" bson:"memberIds"`
	Members     []TeamMember       `json:"members" bson:"members"`
	CreatedAt   *time.Time         `json:"createdAt,omitempty" bson:"createdAt,omitempty"`

	Extra bson.M `json:"-" bson:",inline"`
}

// Tasks se učitavaju odvojeno (subkolekcija), nikad se ne ugrađuju u dokument projekta.
