package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"zenith-project/backend/models"
)

type TeamService struct {
	TeamsCollection *mongo.Collection
}

func NewTeamService(teamsCollection *mongo.Collection) *TeamService {
	return &TeamService{TeamsCollection: teamsCollection}
}

func (s *TeamService) CreateTeam(ctx context.Context, name string, owner models.User) (*models.Team, error) {
	if name == "" {
		return nil, fmt.Errorf("team name is required")
	}

	team := &models.Team{
		ID:         primitive.NewObjectID(),
		Name:       name,
		OwnerID:    owner.ID.Hex(),
		Members:    []models.TeamMember{owner.AsTeamMember(models.RoleAdmin)},
		MemberIDs:  []string{owner.ID.Hex()},
		ProjectIDs: []string{},
	}

	result, err := s.TeamsCollection.InsertOne(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %v", err)
	}

	team.ID = result.InsertedID.(primitive.ObjectID)
	return team, nil
}

func (s *TeamService) GetTeamByID(ctx context.Context, teamID string) (*models.Team, error) {
	objectID, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return nil, fmt.Errorf("invalid team ID format: %v", err)
	}

	var team models.Team
	err = s.TeamsCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&team)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to retrieve team: %v", err)
	}
	return &team, nil
}

func (s *TeamService) GetTeamsForUser(ctx context.Context, userID string) ([]models.Team, error) {
	cursor, err := s.TeamsCollection.Find(ctx, bson.M{"memberIds": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve teams: %v", err)
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err = cursor.All(ctx, &teams); err != nil {
		return nil, fmt.Errorf("failed to decode teams: %v", err)
	}
	return teams, nil
}

func (s *TeamService) GetTeamsForProject(ctx context.Context, projectID string) ([]models.Team, error) {
	cursor, err := s.TeamsCollection.Find(ctx, bson.M{"projectIds": projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve teams: %v", err)
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err = cursor.All(ctx, &teams); err != nil {
		return nil, fmt.Errorf("failed to decode teams: %v", err)
	}
	return teams, nil
}

// AddTeamMember dodaje člana sa ulogom. Uloga mora biti Admin ili Member.
func (s *TeamService) AddTeamMember(ctx context.Context, teamID string, member models.TeamMember) error {
	if !member.Role.IsValid() {
		return ErrInvalidRole
	}

	objectID, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return fmt.Errorf("invalid team ID format: %v", err)
	}

	update := bson.M{
		"$addToSet": bson.M{
			"memberIds": member.ID,
			"members":   member,
		},
	}

	result, err := s.TeamsCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to add team member: %v", err)
	}
	if result.MatchedCount == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (s *TeamService) RemoveTeamMember(ctx context.Context, teamID, memberID string) error {
	objectID, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return fmt.Errorf("invalid team ID format: %v", err)
	}

	update := bson.M{
		"$pull": bson.M{
			"memberIds": memberID,
			"members":   bson.M{"id": memberID},
		},
	}

	result, err := s.TeamsCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove team member: %v", err)
	}
	if result.ModifiedCount == 0 {
		return fmt.Errorf("member not found in team or already removed")
	}
	return nil
}

// ChangeMemberRole menja ulogu člana. Bezuslovan upis: poslednji upis
// pobeđuje, bez transakcije prema paralelnom uklanjanju istog člana.
func (s *TeamService) ChangeMemberRole(ctx context.Context, teamID, memberID string, role models.TeamRole) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}

	objectID, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return fmt.Errorf("invalid team ID format: %v", err)
	}

	filter := bson.M{"_id": objectID, "members.id": memberID}
	update := bson.M{"$set": bson.M{"members.$.role": role}}

	result, err := s.TeamsCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to change member role: %v", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("member not found in team")
	}
	return nil
}

// AttachProject povezuje tim sa projektom.
func (s *TeamService) AttachProject(ctx context.Context, teamID, projectID string) error {
	objectID, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return fmt.Errorf("invalid team ID format: %v", err)
	}

	update := bson.M{"$addToSet": bson.M{"projectIds": projectID}}
	result, err := s.TeamsCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to attach project to team: %v", err)
	}
	if result.MatchedCount == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (s *TeamService) DetachProject(ctx context.Context, teamID, projectID string) error {
	objectID, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return fmt.Errorf("invalid team ID format: %v", err)
	}

	update := bson.M{"$pull": bson.M{"projectIds": projectID}}
	result, err := s.TeamsCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to detach project from team: %v", err)
	}
	if result.MatchedCount == 0 {
		return ErrTeamNotFound
	}
	return nil
}
