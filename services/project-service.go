package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"zenith-project/backend/models"
)

type ProjectService struct {
	ProjectsCollection *mongo.Collection
	TasksCollection    *mongo.Collection
}

func NewProjectService(projectsCollection, tasksCollection *mongo.Collection) *ProjectService {
	return &ProjectService{
		ProjectsCollection: projectsCollection,
		TasksCollection:    tasksCollection,
	}
}

// clampProgress drži napredak u opsegu 0-100.
func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// CreateProject kreira projekat; vlasnik je fiksiran pri kreiranju i ulazi
// u roster kao prvi član.
func (s *ProjectService) CreateProject(ctx context.Context, name, description, image, color string, owner models.User) (*models.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	now := time.Now().UTC()
	ownerMember := owner.AsTeamMember(models.RoleAdmin)
	project := &models.Project{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		Image:       image,
		Color:       color,
		Progress:    0,
		OwnerID:     owner.ID.Hex(),
		MemberIDs:   []string{owner.ID.Hex()},
		Members:     []models.TeamMember{ownerMember},
		CreatedAt:   &now,
	}

	result, err := s.ProjectsCollection.InsertOne(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %v", err)
	}

	project.ID = result.InsertedID.(primitive.ObjectID)
	return project, nil
}

// GetProjectsForUser vraća projekte u kojima je korisnik član (memberIds upit).
func (s *ProjectService) GetProjectsForUser(ctx context.Context, userID string) ([]models.Project, error) {
	cursor, err := s.ProjectsCollection.Find(ctx, bson.M{"memberIds": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve projects: %v", err)
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %v", err)
	}
	return projects, nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, projectID string) (*models.Project, error) {
	objectID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, fmt.Errorf("invalid project ID format: %v", err)
	}

	var project models.Project
	err = s.ProjectsCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("error fetching project: %v", err)
	}
	return &project, nil
}

// ProjectUpdate su opciona polja za delimično ažuriranje; nil znači bez izmene.
type ProjectUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Color       *string `json:"color"`
	Progress    *int    `json:"progress"`
}

func (s *ProjectService) UpdateProject(ctx context.Context, projectID string, update ProjectUpdate) error {
	objectID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return fmt.Errorf("invalid project ID format: %v", err)
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Color != nil {
		set["color"] = *update.Color
	}
	if update.Progress != nil {
		set["progress"] = clampProgress(*update.Progress)
	}
	if len(set) == 0 {
		return nil
	}

	result, err := s.ProjectsCollection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update project: %v", err)
	}
	if result.MatchedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// AddMemberToProject dodaje člana u obe reprezentacije: listu referenci za
// upite i denormalizovani roster.
func (s *ProjectService) AddMemberToProject(ctx context.Context, projectID string, member models.TeamMember) error {
	objectID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return fmt.Errorf("invalid project ID format: %v", err)
	}

	update := bson.M{
		"$addToSet": bson.M{
			"memberIds": member.ID,
			"members":   member,
		},
	}

	result, err := s.ProjectsCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to add member to project: %v", err)
	}
	if result.MatchedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (s *ProjectService) RemoveMemberFromProject(ctx context.Context, projectID, memberID string) error {
	objectID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return fmt.Errorf("invalid project ID format: %v", err)
	}

	update := bson.M{
		"$pull": bson.M{
			"memberIds": memberID,
			"members":   bson.M{"id": memberID},
		},
	}

	result, err := s.ProjectsCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove member from project: %v", err)
	}
	if result.ModifiedCount == 0 {
		return fmt.Errorf("member not found in project or already removed")
	}
	return nil
}

// DeleteProject briše projekat zajedno sa njegovim zadacima (subkolekcija
// deli sudbinu projekta).
func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	objectID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return fmt.Errorf("invalid project ID format: %v", err)
	}

	if _, err := s.TasksCollection.DeleteMany(ctx, bson.M{"projectId": projectID}); err != nil {
		return fmt.Errorf("failed to delete project tasks: %v", err)
	}

	result, err := s.ProjectsCollection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete project: %v", err)
	}
	if result.DeletedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}
