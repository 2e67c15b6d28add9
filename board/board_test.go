package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenith-project/backend/models"
)

func task(id string, status models.TaskStatus) models.Task {
	return models.Task{Title: id, Status: status}
}

func titles(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestGroupSplitsIntoFourColumns(t *testing.T) {
	tasks := []models.Task{
		task("a", models.StatusBacklog),
		task("b", models.StatusInProgress),
		task("c", models.StatusInProgress),
		task("d", models.StatusDone),
	}

	cols := Group(tasks)

	assert.Len(t, cols, 4)
	assert.Equal(t, []string{"a"}, titles(cols[models.StatusBacklog]))
	assert.Equal(t, []string{"b", "c"}, titles(cols[models.StatusInProgress]))
	assert.Empty(t, cols[models.StatusReview])
	assert.Equal(t, []string{"d"}, titles(cols[models.StatusDone]))
	assert.Equal(t, len(tasks), cols.Total())
}

func TestGroupEmptyInputStillHasAllColumns(t *testing.T) {
	cols := Group(nil)

	for _, status := range ColumnOrder {
		col, ok := cols[status]
		assert.True(t, ok)
		assert.NotNil(t, col)
		assert.Empty(t, col)
	}
}

func TestGroupUnknownStatusLandsInBacklog(t *testing.T) {
	cols := Group([]models.Task{{Title: "x", Status: "archived"}})

	assert.Equal(t, []string{"x"}, titles(cols[models.StatusBacklog]))
	assert.Equal(t, 1, cols.Total())
}

func TestMoveAcrossColumnsRewritesStatus(t *testing.T) {
	cols := Group([]models.Task{
		task("A", models.StatusInProgress),
		task("B", models.StatusDone),
		task("C", models.StatusDone),
	})

	moved, err := cols.Move(MoveEvent{
		From: models.StatusInProgress, FromIndex: 0,
		To: models.StatusDone, ToIndex: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "A", moved.Title)
	assert.Equal(t, models.StatusDone, moved.Status)
	assert.Empty(t, cols[models.StatusInProgress])
	assert.Equal(t, []string{"B", "A", "C"}, titles(cols[models.StatusDone]))
	assert.Equal(t, 3, cols.Total())
}

func TestMoveAppendsAtDestinationIndex(t *testing.T) {
	cols := Group([]models.Task{
		task("A", models.StatusBacklog),
		task("B", models.StatusInProgress),
		task("C", models.StatusDone),
	})
	require.Equal(t, []string{"A"}, titles(cols[models.StatusBacklog]))
	require.Equal(t, []string{"B"}, titles(cols[models.StatusInProgress]))
	require.Equal(t, []string{"C"}, titles(cols[models.StatusDone]))

	_, err := cols.Move(MoveEvent{
		From: models.StatusInProgress, FromIndex: 0,
		To: models.StatusDone, ToIndex: 1,
	})
	require.NoError(t, err)

	assert.Empty(t, cols[models.StatusInProgress])
	assert.Equal(t, []string{"C", "B"}, titles(cols[models.StatusDone]))
	assert.Equal(t, 3, cols.Total())
}

func TestMoveWithinColumnReorders(t *testing.T) {
	cols := Group([]models.Task{
		task("A", models.StatusBacklog),
		task("B", models.StatusBacklog),
		task("C", models.StatusBacklog),
	})

	moved, err := cols.Move(MoveEvent{
		From: models.StatusBacklog, FromIndex: 0,
		To: models.StatusBacklog, ToIndex: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "A", moved.Title)
	assert.Equal(t, models.StatusBacklog, moved.Status)
	assert.Equal(t, []string{"B", "C", "A"}, titles(cols[models.StatusBacklog]))
}

func TestMoveToEndOfColumn(t *testing.T) {
	cols := Group([]models.Task{
		task("A", models.StatusBacklog),
		task("B", models.StatusReview),
	})

	_, err := cols.Move(MoveEvent{
		From: models.StatusBacklog, FromIndex: 0,
		To: models.StatusReview, ToIndex: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A"}, titles(cols[models.StatusReview]))
}

func TestMoveUnknownColumn(t *testing.T) {
	cols := Group([]models.Task{task("A", models.StatusBacklog)})

	_, err := cols.Move(MoveEvent{From: "archived", FromIndex: 0, To: models.StatusDone, ToIndex: 0})
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = cols.Move(MoveEvent{From: models.StatusBacklog, FromIndex: 0, To: "archived", ToIndex: 0})
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestMoveIndexOutOfRangeLeavesColumnsIntact(t *testing.T) {
	cols := Group([]models.Task{
		task("A", models.StatusBacklog),
		task("B", models.StatusBacklog),
	})

	_, err := cols.Move(MoveEvent{From: models.StatusBacklog, FromIndex: 5, To: models.StatusDone, ToIndex: 0})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = cols.Move(MoveEvent{From: models.StatusBacklog, FromIndex: 0, To: models.StatusDone, ToIndex: 3})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	// Neuspeo događaj ne sme da ošteti tablu.
	assert.Equal(t, []string{"A", "B"}, titles(cols[models.StatusBacklog]))
	assert.Empty(t, cols[models.StatusDone])
	assert.Equal(t, 2, cols.Total())
}

func TestMoveNegativeIndexes(t *testing.T) {
	cols := Group([]models.Task{task("A", models.StatusBacklog)})

	_, err := cols.Move(MoveEvent{From: models.StatusBacklog, FromIndex: -1, To: models.StatusDone, ToIndex: 0})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = cols.Move(MoveEvent{From: models.StatusBacklog, FromIndex: 0, To: models.StatusDone, ToIndex: -1})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
