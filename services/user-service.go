package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"zenith-project/backend/models"
	"zenith-project/backend/utils"
)

type UserService struct {
	UserCollection *mongo.Collection
}

func NewUserService(userCollection *mongo.Collection) *UserService {
	return &UserService{UserCollection: userCollection}
}

// RegisterUser kreira nalog sa heširanom lozinkom i izvedenim inicijalima.
func (s *UserService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if !strings.Contains(user.Email, "@") {
		return models.User{}, ErrInvalidEmail
	}
	if len(user.Password) < 6 {
		return models.User{}, ErrWeakPassword
	}

	// Proveri da li već postoji nalog sa ovim email-om
	count, err := s.UserCollection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return models.User{}, fmt.Errorf("failed to check existing account: %v", err)
	}
	if count > 0 {
		return models.User{}, ErrEmailInUse
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %v", err)
	}

	user.ID = primitive.NewObjectID()
	user.Password = hashed
	user.Initials = utils.MakeInitials(user.Name)
	user.IsActive = true

	if _, err := s.UserCollection.InsertOne(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %v", err)
	}

	return user, nil
}

// LoginUser proverava kredencijale i vraća korisnika sa svežim tokenom.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.User{}, "", ErrUserNotFound
		}
		return models.User{}, "", fmt.Errorf("failed to look up user: %v", err)
	}

	if err := utils.CheckPassword(user.Password, password); err != nil {
		return models.User{}, "", ErrWrongPassword
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Email, "member")
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to generate token: %v", err)
	}

	return user, token, nil
}

// GetUserByEmail je one-shot čitanje za razrešavanje identiteta pozvanog
// korisnika po email adresi.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to look up user by email: %v", err)
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid user ID format: %v", err)
	}

	var user models.User
	err = s.UserCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to look up user: %v", err)
	}
	return user, nil
}
