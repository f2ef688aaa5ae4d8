package repo

import (
	"testing"

	"MakeupBot/model"

	"github.com/stretchr/testify/assert"
)

func TestSubscribersFrom(t *testing.T) {
	users := map[string]firebaseUser{
		"30":     {Subscribed: true, RotationCursor: 4},
		"10":     {Subscribed: true},
		"20":     {Subscribed: false, RotationCursor: 7},
		"broken": {Subscribed: true, RotationCursor: 1},
	}

	assert.Equal(t, []model.Subscriber{
		{UserID: 10, Cursor: 0},
		{UserID: 30, Cursor: 4},
	}, subscribersFrom(users))
}

func TestSubscribersFrom_Empty(t *testing.T) {
	assert.Empty(t, subscribersFrom(nil))
}
