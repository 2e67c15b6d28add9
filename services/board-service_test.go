package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"zenith-project/backend/board"
	"zenith-project/backend/models"
)

func boardTask(title string, status models.TaskStatus) models.Task {
	return models.Task{ID: primitive.NewObjectID(), ProjectID: "p1", Title: title, Status: status}
}

func updateFor(t *testing.T, writes []mongo.WriteModel, id primitive.ObjectID) bson.M {
	t.Helper()
	for _, w := range writes {
		model, ok := w.(*mongo.UpdateOneModel)
		require.True(t, ok)
		filter := model.Filter.(bson.M)
		if filter["_id"] == id {
			return model.Update.(bson.M)["$set"].(bson.M)
		}
	}
	t.Fatalf("no write for task %s", id.Hex())
	return nil
}

func TestBoardWritesCrossColumnMove(t *testing.T) {
	a := boardTask("A", models.StatusInProgress)
	b := boardTask("B", models.StatusDone)
	c := boardTask("C", models.StatusDone)

	cols := board.Group([]models.Task{a, b, c})
	ev := board.MoveEvent{From: models.StatusInProgress, FromIndex: 0, To: models.StatusDone, ToIndex: 1}
	_, err := cols.Move(ev)
	require.NoError(t, err)

	writes := boardWrites(cols, ev)

	// Obe pogođene kolone se prepisuju: prazna izvorna i tri u odredišnoj.
	assert.Len(t, writes, 3)

	setA := updateFor(t, writes, a.ID)
	assert.Equal(t, models.StatusDone, setA["status"])
	assert.Equal(t, 1, setA["order"])

	setB := updateFor(t, writes, b.ID)
	assert.Equal(t, 0, setB["order"])
	setC := updateFor(t, writes, c.ID)
	assert.Equal(t, 2, setC["order"])
}

func TestBoardWritesSameColumnMoveTouchesOneColumn(t *testing.T) {
	a := boardTask("A", models.StatusBacklog)
	b := boardTask("B", models.StatusBacklog)
	c := boardTask("C", models.StatusBacklog)

	cols := board.Group([]models.Task{a, b, c})
	ev := board.MoveEvent{From: models.StatusBacklog, FromIndex: 0, To: models.StatusBacklog, ToIndex: 2}
	_, err := cols.Move(ev)
	require.NoError(t, err)

	writes := boardWrites(cols, ev)
	assert.Len(t, writes, 3)

	setA := updateFor(t, writes, a.ID)
	assert.Equal(t, models.StatusBacklog, setA["status"])
	assert.Equal(t, 2, setA["order"])
	setB := updateFor(t, writes, b.ID)
	assert.Equal(t, 0, setB["order"])
}
