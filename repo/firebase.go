package repo

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"MakeupBot/model"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

const usersPath = "users"

// firebaseUser mirrors the node stored at users/<id>.
type firebaseUser struct {
	Subscribed     bool `json:"subscribed"`
	RotationCursor int  `json:"rotation_cursor"`
}

// FirebaseConnector stores user records in the Firebase Realtime Database.
//
// ListSubscribed queries by the "subscribed" child, which the database rules
// must index:
//
//	{"rules": {"users": {".indexOn": ["subscribed"]}}}
//
// Without the index the query is rejected and ListSubscribed reads the whole
// users node instead.
type FirebaseConnector struct {
	app    *firebase.App
	client *db.Client
}

// NewFirebaseConnector creates a new Firebase connector
func NewFirebaseConnector(ctx context.Context, serviceAccountKeyPath string, databaseURL string) (*FirebaseConnector, error) {
	opt := option.WithCredentialsFile(serviceAccountKeyPath)

	config := &firebase.Config{
		DatabaseURL: databaseURL,
	}
	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting database client: %w", err)
	}

	return &FirebaseConnector{
		app:    app,
		client: client,
	}, nil
}

func (fc *FirebaseConnector) user(userID int64) *db.Ref {
	return fc.client.NewRef(usersPath).Child(strconv.FormatInt(userID, 10))
}

// Ensure creates the user node, or fills in fields added since it was written.
func (fc *FirebaseConnector) Ensure(ctx context.Context, userID int64) error {
	err := fc.user(userID).Transaction(ctx, func(node db.TransactionNode) (interface{}, error) {
		var current map[string]interface{}
		if err := node.Unmarshal(&current); err != nil {
			return nil, err
		}
		if current == nil {
			current = map[string]interface{}{}
		}
		if _, ok := current["subscribed"]; !ok {
			current["subscribed"] = false
		}
		if _, ok := current["rotation_cursor"]; !ok {
			current["rotation_cursor"] = 0
		}
		return current, nil
	})
	if err != nil {
		return fmt.Errorf("error ensuring user %d: %w", userID, err)
	}
	return nil
}

func (fc *FirebaseConnector) set(ctx context.Context, userID int64, field string, value interface{}) error {
	if err := fc.user(userID).Child(field).Set(ctx, value); err != nil {
		return fmt.Errorf("error updating %s for user %d: %w", field, userID, err)
	}
	return nil
}

func (fc *FirebaseConnector) Subscribed(ctx context.Context, userID int64) (bool, error) {
	var subscribed bool
	if err := fc.user(userID).Child("subscribed").Get(ctx, &subscribed); err != nil {
		return false, fmt.Errorf("error reading subscription for user %d: %w", userID, err)
	}
	return subscribed, nil
}

func (fc *FirebaseConnector) SetSubscribed(ctx context.Context, userID int64, subscribed bool) error {
	return fc.set(ctx, userID, "subscribed", subscribed)
}

func (fc *FirebaseConnector) ListSubscribed(ctx context.Context) ([]model.Subscriber, error) {
	ref := fc.client.NewRef(usersPath)

	var users map[string]firebaseUser
	if err := ref.OrderByChild("subscribed").EqualTo(true).Get(ctx, &users); err != nil {
		users = nil
		if fullErr := ref.Get(ctx, &users); fullErr != nil {
			return nil, fmt.Errorf("error listing subscribers: %w", errors.Join(err, fullErr))
		}
	}
	return subscribersFrom(users), nil
}

// subscribersFrom keeps the subscribed records with a numeric key, ordered
// by user id.
func subscribersFrom(users map[string]firebaseUser) []model.Subscriber {
	subs := make([]model.Subscriber, 0, len(users))
	for key, u := range users {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil || !u.Subscribed {
			continue
		}
		subs = append(subs, model.Subscriber{UserID: id, Cursor: u.RotationCursor})
	}
	slices.SortFunc(subs, func(a, b model.Subscriber) int {
		return cmp.Compare(a.UserID, b.UserID)
	})
	return subs
}

func (fc *FirebaseConnector) AdvanceCursor(ctx context.Context, userID int64, cursor int) error {
	return fc.set(ctx, userID, "rotation_cursor", cursor)
}

func (fc *FirebaseConnector) LastResult(ctx context.Context, userID int64) (string, bool, error) {
	var text *string
	if err := fc.user(userID).Child("last_result").Get(ctx, &text); err != nil {
		return "", false, fmt.Errorf("error reading last result for user %d: %w", userID, err)
	}
	if text == nil {
		return "", false, nil
	}
	return *text, true, nil
}

func (fc *FirebaseConnector) SetLastResult(ctx context.Context, userID int64, text string) error {
	return fc.set(ctx, userID, "last_result", text)
}

func (fc *FirebaseConnector) LastAnswers(ctx context.Context, userID int64) (model.Answers, bool, error) {
	var raw json.RawMessage
	if err := fc.user(userID).Child("last_answers").Get(ctx, &raw); err != nil {
		return model.Answers{}, false, fmt.Errorf("error reading last answers for user %d: %w", userID, err)
	}

	answers, err := model.ParseSnapshot(raw)
	if errors.Is(err, model.ErrInvalidSnapshot) {
		return model.Answers{}, false, nil
	}
	return answers, err == nil, err
}

func (fc *FirebaseConnector) SetLastAnswers(ctx context.Context, userID int64, answers model.Answers) error {
	return fc.set(ctx, userID, "last_answers", answers)
}

// Close is a no-op: the Firebase app holds no connection that needs releasing.
func (fc *FirebaseConnector) Close() error {
	return nil
}
