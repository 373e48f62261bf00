package services

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"taskdesk/model"
)

const usersCollection = "Users"

var ErrUserNotFound = errors.New("user not found")

func UserExist(ctx context.Context, firestoreClient *firestore.Client, email string) (bool, error) {
	query := firestoreClient.Collection(usersCollection).Where("email", "==", email).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

func GetUserByEmail(ctx context.Context, firestoreClient *firestore.Client, email string) (*model.User, error) {
	query := firestoreClient.Collection(usersCollection).Where("email", "==", email).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrUserNotFound
	}
	var user model.User
	if err := docs[0].DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByID(ctx context.Context, firestoreClient *firestore.Client, userID string) (*model.User, error) {
	query := firestoreClient.Collection(usersCollection).Where("userid", "==", userID).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrUserNotFound
	}
	var user model.User
	if err := docs[0].DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ResolveViewer builds the trusted viewer context for an authenticated user.
// The role always comes from the Users collection, never from token claims or
// request bodies, so a stale or tampered role claim cannot widen visibility.
func ResolveViewer(ctx context.Context, firestoreClient *firestore.Client, userID string) (model.Viewer, error) {
	user, err := GetUserByID(ctx, firestoreClient, userID)
	if err != nil {
		return model.Viewer{}, err
	}
	if user.Active != "1" {
		return model.Viewer{}, ErrUserNotFound
	}
	return model.Viewer{ActorID: user.UserID, Role: user.Role}, nil
}
