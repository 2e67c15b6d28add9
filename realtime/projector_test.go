package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"zenith-project/backend/models"
)

func marshalRaw(t *testing.T, doc bson.M) bson.Raw {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestDecodeTaskDatetimeFields(t *testing.T) {
	due := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	raw := marshalRaw(t, bson.M{
		"_id":       primitive.NewObjectID(),
		"projectId": "p1",
		"title":     "Ship it",
		"status":    "in-progress",
		"priority":  "high",
		"dueDate":   primitive.NewDateTimeFromTime(due),
	})

	task, err := DecodeTask(raw)
	require.NoError(t, err)

	assert.Equal(t, "p1", task.ProjectID)
	assert.Equal(t, models.StatusInProgress, task.Status)
	require.NotNil(t, task.DueDate)
	assert.True(t, task.DueDate.Equal(due))
}

func TestDecodeTaskMissingDatesAreNil(t *testing.T) {
	raw := marshalRaw(t, bson.M{
		"_id":       primitive.NewObjectID(),
		"projectId": "p1",
		"title":     "No dates",
		"status":    "backlog",
		"priority":  "low",
	})

	task, err := DecodeTask(raw)
	require.NoError(t, err)

	assert.Nil(t, task.DueDate)
	assert.Nil(t, task.StartDate)
	assert.Nil(t, task.CreatedAt)
	assert.Nil(t, task.Assignee)
}

func TestDecodeTaskUnknownFieldsRideAlong(t *testing.T) {
	raw := marshalRaw(t, bson.M{
		"_id":         primitive.NewObjectID(),
		"projectId":   "p1",
		"title":       "Extra",
		"status":      "done",
		"priority":    "medium",
		"legacyField": "kept",
	})

	task, err := DecodeTask(raw)
	require.NoError(t, err)

	assert.Equal(t, "kept", task.Extra["legacyField"])
}

func TestDecodeInvitation(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	raw := marshalRaw(t, bson.M{
		"_id":            primitive.NewObjectID(),
		"targetType":     "team",
		"targetId":       "t1",
		"targetName":     "Core",
		"inviterName":    "Ana",
		"recipientEmail": "bob@example.com",
		"status":         "pending",
		"createdAt":      primitive.NewDateTimeFromTime(created),
	})

	invitation, err := DecodeInvitation(raw)
	require.NoError(t, err)

	assert.Equal(t, models.TargetTeam, invitation.TargetType)
	assert.Equal(t, models.InvitationPending, invitation.Status)
	assert.Equal(t, "bob@example.com", invitation.RecipientEmail)
	require.NotNil(t, invitation.CreatedAt)
	assert.True(t, invitation.CreatedAt.Equal(created))
}

func TestDecodeTeam(t *testing.T) {
	raw := marshalRaw(t, bson.M{
		"_id":        primitive.NewObjectID(),
		"name":       "Platform",
		"memberIds":  bson.A{"u1", "u2"},
		"projectIds": bson.A{"p1"},
		"members": bson.A{
			bson.M{"id": "u1", "name": "Ana", "role": "Admin"},
			bson.M{"id": "u2", "name": "Bob", "role": "Member"},
		},
	})

	team, err := DecodeTeam(raw)
	require.NoError(t, err)

	assert.Equal(t, "Platform", team.Name)
	assert.Equal(t, []string{"u1", "u2"}, team.MemberIDs)
	require.Len(t, team.Members, 2)
	assert.Equal(t, models.RoleAdmin, team.Members[0].Role)
}

func TestDecodeTaskMalformedDocument(t *testing.T) {
	raw := marshalRaw(t, bson.M{
		"title": bson.A{"not", "a", "string"},
	})

	_, err := DecodeTask(raw)
	assert.Error(t, err)
}
