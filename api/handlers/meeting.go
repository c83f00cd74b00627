package handlers

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/fortimeet/fortimeet-api/config"
	"github.com/fortimeet/fortimeet-api/databases"
	"github.com/fortimeet/fortimeet-api/models"
)

// Meeting exported for testing purposes
type Meeting struct {
	DB databases.MeetingDatabase
}

// CreateMeetingHandler creates a meeting with a time-limited invite code
func (m Meeting) CreateMeetingHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody models.CreateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if _, err := mail.ParseAddress(requestBody.HostEmail); err != nil {
		config.ErrorStatus("invalid host email", http.StatusBadRequest, w, err)
		return
	}

	ttlMinutes := models.DefaultTTLMinutes
	if requestBody.TTLMinutes != nil {
		ttlMinutes = *requestBody.TTLMinutes
	}
	if ttlMinutes < 0 {
		config.ErrorStatus("ttl_minutes must not be negative", http.StatusBadRequest, w, nil)
		return
	}

	now := time.Now().UTC()
	meeting := models.Meeting{
		ID:           primitive.NewObjectID(),
		Title:        requestBody.Title,
		HostEmail:    requestBody.HostEmail,
		InviteCode:   primitive.NewObjectID().Hex(),
		ExpiresAt:    now.Add(time.Duration(ttlMinutes) * time.Minute),
		Status:       models.MeetingStatusActive,
		Participants: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := m.DB.InsertOne(r.Context(), meeting); err != nil {
		config.ErrorStatus("failed to create meeting", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Debugw("meeting created",
		"meetingId", meeting.ID.Hex(),
		"expiresAt", meeting.ExpiresAt,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(models.CreateMeetingResponse{
		ID:         meeting.ID.Hex(),
		InviteCode: meeting.InviteCode,
		ExpiresAt:  meeting.ExpiresAt,
	})
}

// JoinMeetingHandler validates an invite code and adds the participant to
// the meeting
func (m Meeting) JoinMeetingHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody models.JoinMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if _, err := mail.ParseAddress(requestBody.Email); err != nil {
		config.ErrorStatus("invalid email", http.StatusBadRequest, w, err)
		return
	}
	if requestBody.InviteCode == "" {
		config.ErrorStatus("invite code is required", http.StatusBadRequest, w, nil)
		return
	}

	meeting, err := m.DB.FindOne(r.Context(), bson.M{"inviteCode": requestBody.InviteCode})
	if err != nil {
		config.ErrorStatus("invite not found", http.StatusNotFound, w, err)
		return
	}
	if meeting.Status != models.MeetingStatusActive {
		config.ErrorStatus("meeting not active", http.StatusBadRequest, w, nil)
		return
	}
	if !meeting.ExpiresAt.After(time.Now().UTC()) {
		config.ErrorStatus("invite expired", http.StatusGone, w, nil)
		return
	}

	// $addToSet keeps rejoining idempotent and lossless under concurrent joins
	update := bson.M{
		"$addToSet": bson.M{"participants": requestBody.Email},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}
	if err := m.DB.UpdateOne(r.Context(), bson.M{"_id": meeting.ID}, update); err != nil {
		config.ErrorStatus("failed to join meeting", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Debugw("participant joined meeting", "meetingId", meeting.ID.Hex())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.JoinMeetingResponse{
		OK:        true,
		MeetingID: meeting.ID.Hex(),
	})
}

// EndMeetingHandler ends the meeting matching the invite code and removes
// its record, so any later lookup answers not found
func (m Meeting) EndMeetingHandler(w http.ResponseWriter, r *http.Request) {
	inviteCode := r.URL.Query().Get("invite_code")
	if inviteCode == "" {
		config.ErrorStatus("invite code is required", http.StatusBadRequest, w, nil)
		return
	}

	meeting, err := m.DB.FindOne(r.Context(), bson.M{"inviteCode": inviteCode})
	if err != nil {
		config.ErrorStatus("meeting not found", http.StatusNotFound, w, err)
		return
	}

	if err := m.DB.DeleteOne(r.Context(), bson.M{"_id": meeting.ID}); err != nil {
		config.ErrorStatus("failed to end meeting", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("meeting ended", "meetingId", meeting.ID.Hex())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.EndMeetingResponse{OK: true})
}
