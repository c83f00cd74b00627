package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meeting status values. An ended meeting is deleted outright, so only
// active documents are ever observable in the collection.
const (
	MeetingStatusActive = "active"
	MeetingStatusEnded  = "ended"
)

// DefaultTTLMinutes is the invite lifetime applied when a create request
// omits ttl_minutes.
const DefaultTTLMinutes = 120

// Meeting represents the structure of a meeting document in MongoDB
type Meeting struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title,omitempty" bson:"title,omitempty"`
	HostEmail    string             `json:"hostEmail" bson:"hostEmail"`
	InviteCode   string             `json:"inviteCode" bson:"inviteCode" index:"unique"`
	ExpiresAt    time.Time          `json:"expiresAt" bson:"expiresAt"`
	Status       string             `json:"status" bson:"status"`
	Participants []string           `json:"participants" bson:"participants"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateMeetingRequest is the payload accepted by POST /api/meetings.
// TTLMinutes is a pointer so an explicit 0 (expires immediately) can be
// told apart from an omitted field (defaults to DefaultTTLMinutes).
type CreateMeetingRequest struct {
	HostEmail  string `json:"host_email"`
	Title      string `json:"title,omitempty"`
	TTLMinutes *int   `json:"ttl_minutes,omitempty"`
}

// CreateMeetingResponse is returned after a meeting is created
type CreateMeetingResponse struct {
	ID         string    `json:"id"`
	InviteCode string    `json:"invite_code"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// JoinMeetingRequest is the payload accepted by POST /api/meetings/join
type JoinMeetingRequest struct {
	Email      string `json:"email"`
	InviteCode string `json:"invite_code"`
}

// JoinMeetingResponse is returned after a participant joins a meeting
type JoinMeetingResponse struct {
	OK        bool   `json:"ok"`
	MeetingID string `json:"meeting_id"`
}

// EndMeetingResponse is returned after a meeting is ended
type EndMeetingResponse struct {
	OK bool `json:"ok"`
}
