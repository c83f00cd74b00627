package databases

// go generate: mockery --name MeetingDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fortimeet/fortimeet-api/models"
)

const meetingName = "meetings"

// MeetingDatabase contains the methods to use with the meeting database
type MeetingDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Meeting, error)
	InsertOne(ctx context.Context, meeting models.Meeting, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error)
}

type meetingDatabase struct {
	db DatabaseHelper
}

// NewMeetingDatabase initializes a new instance of meeting database with the provided db connection
func NewMeetingDatabase(db DatabaseHelper) MeetingDatabase {
	return &meetingDatabase{
		db: db,
	}
}

func (c *meetingDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Meeting, error) {
	meeting := &models.Meeting{}
	err := c.db.Collection(meetingName).FindOne(ctx, filter).Decode(&meeting)
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

func (c *meetingDatabase) InsertOne(ctx context.Context, meeting models.Meeting, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(meetingName).InsertOne(ctx, meeting, opts...)
}

func (c *meetingDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	return c.db.Collection(meetingName).UpdateOne(ctx, filter, update, opts...)
}

func (c *meetingDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(meetingName).DeleteOne(ctx, filter, opts...)
}

func (c *meetingDatabase) DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error) {
	return c.db.Collection(meetingName).DeleteMany(ctx, filter, opts...)
}
