// Package board derives the four Kanban columns from a flat task list and
// applies move events to them.
package board

import (
	"zenith-project/backend/models"
)

// ColumnOrder je redosled kolona na tabli.
var ColumnOrder = []models.TaskStatus{
	models.StatusBacklog,
	models.StatusInProgress,
	models.StatusReview,
	models.StatusDone,
}

// Columns su četiri statusne kolone. Sve četiri uvek postoje, i prazne.
type Columns map[models.TaskStatus][]models.Task

// MoveEvent opisuje jedno prevlačenje: izvornu kolonu i indeks, odredišnu
// kolonu i indeks.
type MoveEvent struct {
	From      models.TaskStatus `json:"from"`
	FromIndex int               `json:"fromIndex"`
	To        models.TaskStatus `json:"to"`
	ToIndex   int               `json:"toIndex"`
}

// Group deli ravnu listu zadataka u četiri kolone, čuvajući relativni
// redosled zadataka istog statusa iz ulazne sekvence. Zadatak sa
// nepoznatim statusom ide u backlog da se ništa ne izgubi.
func Group(tasks []models.Task) Columns {
	cols := Columns{}
	for _, status := range ColumnOrder {
		cols[status] = []models.Task{}
	}

	for _, task := range tasks {
		status := task.Status
		if !status.IsValid() {
			status = models.StatusBacklog
		}
		cols[status] = append(cols[status], task)
	}
	return cols
}

// Total vraća ukupan broj zadataka na tabli.
func (c Columns) Total() int {
	n := 0
	for _, tasks := range c {
		n += len(tasks)
	}
	return n
}

// Move primenjuje jedan događaj prevlačenja. Pomeranje unutar iste kolone
// je čisto preuređivanje; pomeranje preko kolona menja status zadatka na
// ključ odredišne kolone. Ključevi i indeksi se proveravaju; događaj van
// granica vraća grešku umesto da ošteti kolone.
func (c Columns) Move(ev MoveEvent) (models.Task, error) {
	if !ev.From.IsValid() || !ev.To.IsValid() {
		return models.Task{}, ErrUnknownColumn
	}

	src := c[ev.From]
	if ev.FromIndex < 0 || ev.FromIndex >= len(src) {
		return models.Task{}, ErrIndexOutOfRange
	}

	task := src[ev.FromIndex]
	src = append(src[:ev.FromIndex:ev.FromIndex], src[ev.FromIndex+1:]...)
	c[ev.From] = src

	dst := c[ev.To]
	if ev.From == ev.To {
		dst = src
	}
	if ev.ToIndex < 0 || ev.ToIndex > len(dst) {
		// Vraćamo zadatak na izvorno mesto pre nego što prijavimo grešku.
		c[ev.From] = insertTask(src, ev.FromIndex, task)
		return models.Task{}, ErrIndexOutOfRange
	}

	if ev.From != ev.To {
		task.Status = ev.To
	}
	c[ev.To] = insertTask(dst, ev.ToIndex, task)

	return task, nil
}

func insertTask(tasks []models.Task, index int, task models.Task) []models.Task {
	tasks = append(tasks, models.Task{})
	copy(tasks[index+1:], tasks[index:])
	tasks[index] = task
	return tasks
}
