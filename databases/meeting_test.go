package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/fortimeet/fortimeet-api/config"
	"github.com/fortimeet/fortimeet-api/databases"
	"github.com/fortimeet/fortimeet-api/databases/mocks"
	"github.com/fortimeet/fortimeet-api/models"
)

func TestNewMeetingDatabase(t *testing.T) {
	t.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	conf := config.New()

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)
	meetingDB := databases.NewMeetingDatabase(db)

	assert.NotEmpty(t, meetingDB)
}

func TestMeetingDatabase_FindOneError(t *testing.T) {
	singleResultHelper := &mocks.SingleResultHelper{}
	singleResultHelper.On("Decode", mock.Anything).Return(errors.New("mocked-error"))

	conn := &mocks.CollectionHelper{}
	conn.On("FindOne", context.Background(), bson.M{"error": true}).Return(singleResultHelper)

	db := &mocks.DatabaseHelper{}
	db.On("Collection", "meetings").Return(conn)

	meetingDB := databases.NewMeetingDatabase(db)

	meeting, err := meetingDB.FindOne(context.Background(), bson.M{"error": true})

	assert.Nil(t, meeting)
	assert.EqualError(t, err, "mocked-error")
}

func TestMeetingDatabase_FindOneSuccess(t *testing.T) {
	singleResultHelper := &mocks.SingleResultHelper{}
	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Meeting)
		(*arg).InviteCode = "64a0a0a0a0a0a0a0a0a0a0a0"
		(*arg).Status = models.MeetingStatusActive
	})

	conn := &mocks.CollectionHelper{}
	conn.On("FindOne", context.Background(), bson.M{"inviteCode": "64a0a0a0a0a0a0a0a0a0a0a0"}).Return(singleResultHelper)

	db := &mocks.DatabaseHelper{}
	db.On("Collection", "meetings").Return(conn)

	meetingDB := databases.NewMeetingDatabase(db)

	meeting, err := meetingDB.FindOne(context.Background(), bson.M{"inviteCode": "64a0a0a0a0a0a0a0a0a0a0a0"})

	assert.NoError(t, err)
	assert.Equal(t, "64a0a0a0a0a0a0a0a0a0a0a0", meeting.InviteCode)
	assert.Equal(t, models.MeetingStatusActive, meeting.Status)
}

func TestMeetingDatabase_DeleteMany(t *testing.T) {
	conn := &mocks.CollectionHelper{}
	conn.On("DeleteMany", context.Background(), bson.M{"status": "active"}).Return(int64(2), nil)

	db := &mocks.DatabaseHelper{}
	db.On("Collection", "meetings").Return(conn)

	meetingDB := databases.NewMeetingDatabase(db)

	deleted, err := meetingDB.DeleteMany(context.Background(), bson.M{"status": "active"})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
