package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/fortimeet/fortimeet-api/api/scheduler"
	"github.com/fortimeet/fortimeet-api/databases"
	"github.com/fortimeet/fortimeet-api/databases/mocks"
)

func newSchedulerWithConn(conn databases.CollectionHelper) *scheduler.Scheduler {
	db := &mocks.DatabaseHelper{}
	db.On("Collection", "meetings").Return(conn)

	return scheduler.NewScheduler(databases.NewMeetingDatabase(db))
}

func TestScheduler_ReapExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	var filter bson.M
	conn := &mocks.CollectionHelper{}
	conn.On("DeleteMany", mock.Anything, mock.Anything).Return(int64(3), nil).Run(func(args mock.Arguments) {
		filter = args.Get(1).(bson.M)
	})

	s := newSchedulerWithConn(conn)

	err := s.ReapExpired(context.Background(), now)
	assert.NoError(t, err)

	// only meetings expired for longer than the retention window go away
	assert.Equal(t, bson.M{"$lt": now.Add(-scheduler.Retention)}, filter["expiresAt"])
	assert.Equal(t, "active", filter["status"])
}

func TestScheduler_ReapExpiredError(t *testing.T) {
	conn := &mocks.CollectionHelper{}
	conn.On("DeleteMany", mock.Anything, mock.Anything).Return(int64(0), errors.New("mocked-error"))

	s := newSchedulerWithConn(conn)

	err := s.ReapExpired(context.Background(), time.Now().UTC())
	assert.EqualError(t, err, "mocked-error")
}

func TestScheduler_StartStop(t *testing.T) {
	conn := &mocks.CollectionHelper{}
	s := newSchedulerWithConn(conn)

	s.Start()
	s.Stop()
}
