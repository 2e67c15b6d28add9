package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	StatusBacklog    TaskStatus = "backlog"
	StatusInProgress TaskStatus = "in-progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// IsValid proverava da li je status jedan od četiri definisana.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusBacklog, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProjectID     string             `json:"projectId" bson:"projectId"`
	TeamID        string             `json:"teamId,omitempty" bson:"teamId,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	Status        TaskStatus         `json:"status" bson:"status"`
	Priority      TaskPriority       `json:"priority" bson:"priority"`
	DueDate       *time.Time         `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	StartDate     *time.Time         `json:"startDate,omitempty" bson:"startDate,omitempty"`
	CreatedAt     *time.Time         `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	Assignee      *TeamMember        `json:"assignee,omitempty" bson:"assignee,omitempty"`
	Collaborators []TeamMember       `json:"collaborators,omitempty" bson:"collaborators,omitempty"`
	Tags          []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Order         int                `json:"order" bson:"order"`

	// Nepoznata polja iz baze se ne odbacuju, samo putuju dalje.
	Extra bson.M `json:"-" bson:",inline"`
}
