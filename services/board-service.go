package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"zenith-project/backend/board"
	"zenith-project/backend/logging"
	"zenith-project/backend/models"
)

const (
	boardWriteAttempts = 3
	boardWriteBackoff  = 100 * time.Millisecond
)

// BoardService primenjuje prevlačenja na Kanban tabli i trajno upisuje
// ishod. Upis pokriva status premeštenog zadatka i redne brojeve svih
// zadataka u pogođenim kolonama, tako da se tabla posle ponovnog
// učitavanja vidi tačno onako kako je ostavljena.
type BoardService struct {
	TasksCollection *mongo.Collection
	TaskService     *TaskService
}

func NewBoardService(tasksCollection *mongo.Collection, taskService *TaskService) *BoardService {
	return &BoardService{TasksCollection: tasksCollection, TaskService: taskService}
}

// GetBoard učitava zadatke projekta i deli ih u četiri kolone.
func (s *BoardService) GetBoard(ctx context.Context, projectID string) (board.Columns, error) {
	tasks, err := s.TaskService.GetTasksByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return board.Group(tasks), nil
}

// MoveTask primenjuje jedan događaj prevlačenja na tablu projekta i upisuje
// novi raspored u bazu. Neuspeo upis se ponavlja sa rastućom pauzom; tek
// posle poslednjeg pokušaja greška se vraća pozivaocu.
func (s *BoardService) MoveTask(ctx context.Context, projectID string, ev board.MoveEvent) (*models.Task, error) {
	tasks, err := s.TaskService.GetTasksByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	cols := board.Group(tasks)
	moved, err := cols.Move(ev)
	if err != nil {
		return nil, err
	}
	if moved.ProjectID != projectID {
		return nil, board.ErrTaskNotInProject
	}

	writes := boardWrites(cols, ev)
	if err := s.persistBoard(ctx, writes); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: BOARD_TASK_MOVED, Description: Task %s moved %s[%d] -> %s[%d] in project %s.",
		moved.ID.Hex(), ev.From, ev.FromIndex, ev.To, ev.ToIndex, projectID)
	return &moved, nil
}

// boardWrites pravi upise za pogođene kolone: svaki zadatak dobija svoj
// indeks u koloni kao order, a premešteni zadatak i novi status.
func boardWrites(cols board.Columns, ev board.MoveEvent) []mongo.WriteModel {
	affected := []models.TaskStatus{ev.From}
	if ev.To != ev.From {
		affected = append(affected, ev.To)
	}

	var writes []mongo.WriteModel
	for _, status := range affected {
		for i, task := range cols[status] {
			writes = append(writes, mongo.NewUpdateOneModel().
				SetFilter(bson.M{"_id": task.ID}).
				SetUpdate(bson.M{"$set": bson.M{"status": status, "order": i}}))
		}
	}
	return writes
}

func (s *BoardService) persistBoard(ctx context.Context, writes []mongo.WriteModel) error {
	if len(writes) == 0 {
		return nil
	}

	var lastErr error
	backoff := boardWriteBackoff
	for attempt := 1; attempt <= boardWriteAttempts; attempt++ {
		_, err := s.TasksCollection.BulkWrite(ctx, writes)
		if err == nil {
			return nil
		}
		lastErr = err
		logging.Logger.Warnf("Event ID: BOARD_WRITE_RETRY, Description: Board write attempt %d/%d failed: %v",
			attempt, boardWriteAttempts, err)
		if attempt < boardWriteAttempts {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			backoff *= 2
		}
	}
	return fmt.Errorf("failed to persist board layout: %v", lastErr)
}
