package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"zenith-project/backend/logging"
	"zenith-project/backend/models"
)

type InvitationService struct {
	InvitationsCollection *mongo.Collection
	userService           *UserService
	teamService           *TeamService
	projectService        *ProjectService
	notificationService   *NotificationService
}

func NewInvitationService(
	invitationsCollection *mongo.Collection,
	userService *UserService,
	teamService *TeamService,
	projectService *ProjectService,
	notificationService *NotificationService,
) *InvitationService {
	return &InvitationService{
		InvitationsCollection: invitationsCollection,
		userService:           userService,
		teamService:           teamService,
		projectService:        projectService,
		notificationService:   notificationService,
	}
}

// CreateInvitation kreira pozivnicu. Primalac se razrešava one-shot
// čitanjem po email adresi; nepoznat email je greška.
func (s *InvitationService) CreateInvitation(ctx context.Context, invitation models.Invitation) (*models.Invitation, error) {
	if invitation.TargetType != models.TargetTeam && invitation.TargetType != models.TargetProject {
		return nil, fmt.Errorf("invalid invitation target type: %s", invitation.TargetType)
	}
	if invitation.TargetID == "" || invitation.RecipientEmail == "" {
		return nil, fmt.Errorf("targetId and recipientEmail are required")
	}

	recipient, err := s.userService.GetUserByEmail(ctx, invitation.RecipientEmail)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, ErrRecipientUnknown
		}
		return nil, err
	}

	now := time.Now().UTC()
	invitation.ID = primitive.NewObjectID()
	invitation.RecipientEmail = recipient.Email
	invitation.Status = models.InvitationPending
	invitation.CreatedAt = &now

	if _, err := s.InvitationsCollection.InsertOne(ctx, invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %v", err)
	}

	// Notifikacija je usputna: njen pad ne obara pozivnicu.
	message := fmt.Sprintf("%s te je pozvao u %s \"%s\"", invitation.InviterName, invitation.TargetType, invitation.TargetName)
	if err := s.notificationService.CreateNotification(recipient.ID.Hex(), recipient.Username, message); err != nil {
		logging.Logger.Warnf("Event ID: NOTIFICATION_CREATE_FAILED, Description: Failed to create invitation notification: %v", err)
	}

	return &invitation, nil
}

// GetInvitationsForUser vraća pozivnice po email adresi primaoca.
func (s *InvitationService) GetInvitationsForUser(ctx context.Context, email string) ([]models.Invitation, error) {
	cursor, err := s.InvitationsCollection.Find(ctx, bson.M{"recipientEmail": email})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invitations: %v", err)
	}
	defer cursor.Close(ctx)

	var invitations []models.Invitation
	if err = cursor.All(ctx, &invitations); err != nil {
		return nil, fmt.Errorf("failed to decode invitations: %v", err)
	}
	return invitations, nil
}

// RespondToInvitation prihvata ili odbija pozivnicu. Prihvatanje dodaje
// primaoca u ciljni tim ili projekat pre nego što se status upiše.
func (s *InvitationService) RespondToInvitation(ctx context.Context, invitationID string, accept bool) (*models.Invitation, error) {
	objectID, err := primitive.ObjectIDFromHex(invitationID)
	if err != nil {
		return nil, fmt.Errorf("invalid invitation ID format: %v", err)
	}

	var invitation models.Invitation
	err = s.InvitationsCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&invitation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to retrieve invitation: %v", err)
	}
	if invitation.Status != models.InvitationPending {
		return nil, ErrInvitationResolved
	}

	status := models.InvitationRejected
	if accept {
		status = models.InvitationAccepted

		recipient, err := s.userService.GetUserByEmail(ctx, invitation.RecipientEmail)
		if err != nil {
			return nil, err
		}
		member := recipient.AsTeamMember(models.RoleMember)

		switch invitation.TargetType {
		case models.TargetTeam:
			if err := s.teamService.AddTeamMember(ctx, invitation.TargetID, member); err != nil {
				return nil, err
			}
		case models.TargetProject:
			if err := s.projectService.AddMemberToProject(ctx, invitation.TargetID, member); err != nil {
				return nil, err
			}
		}
	}

	update := bson.M{"$set": bson.M{"status": status}}
	if _, err := s.InvitationsCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update); err != nil {
		return nil, fmt.Errorf("failed to update invitation status: %v", err)
	}
	invitation.Status = status

	// Svaka promena statusa ostavlja red u feedu primaoca; pad notifikacije
	// ne obara odgovor.
	if recipient, err := s.userService.GetUserByEmail(ctx, invitation.RecipientEmail); err == nil {
		verb := "odbio/la"
		if accept {
			verb = "prihvatio/la"
		}
		message := fmt.Sprintf("%s si pozivnicu u %s \"%s\"", verb, invitation.TargetType, invitation.TargetName)
		if err := s.notificationService.CreateNotification(recipient.ID.Hex(), recipient.Username, message); err != nil {
			logging.Logger.Warnf("Event ID: NOTIFICATION_CREATE_FAILED, Description: Failed to create response notification: %v", err)
		}
	}

	return &invitation, nil
}
