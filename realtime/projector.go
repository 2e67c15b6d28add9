package realtime

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"zenith-project/backend/models"
)

// Projector mapira sirov dokument iz baze u domenski entitet.
// Jedina semantička transformacija je dekodiranje BSON datuma u time.Time;
// polje koje nedostaje daje nil, nikad grešku. Nepoznata polja se ne
// odbacuju, putuju dalje kroz inline mapu entiteta.
type Projector[T any] func(raw bson.Raw) (T, error)

func DecodeTask(raw bson.Raw) (models.Task, error) {
	var task models.Task
	if err := bson.Unmarshal(raw, &task); err != nil {
		return models.Task{}, fmt.Errorf("failed to decode task document: %v", err)
	}
	return task, nil
}

func DecodeProject(raw bson.Raw) (models.Project, error) {
	var project models.Project
	if err := bson.Unmarshal(raw, &project); err != nil {
		return models.Project{}, fmt.Errorf("failed to decode project document: %v", err)
	}
	return project, nil
}

func DecodeTeam(raw bson.Raw) (models.Team, error) {
	var team models.Team
	if err := bson.Unmarshal(raw, &team); err != nil {
		return models.Team{}, fmt.Errorf("failed to decode team document: %v", err)
	}
	return team, nil
}

func DecodeInvitation(raw bson.Raw) (models.Invitation, error) {
	var invitation models.Invitation
	if err := bson.Unmarshal(raw, &invitation); err != nil {
		return models.Invitation{}, fmt.Errorf("failed to decode invitation document: %v", err)
	}
	return invitation, nil
}
