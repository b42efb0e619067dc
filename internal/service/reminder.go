package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet_docs/internal/models"
	"fleet_docs/internal/repository"
)

// ErrNoExpirationDate is returned when reminder creation is attempted on a
// document without an expiration date.
var ErrNoExpirationDate = errors.New("the document must have an expiration date to create a calendar event")

// OpenEventAction tells the client to open a calendar event's form view.
type OpenEventAction struct {
	EventID  uint   `json:"event_id"`
	ViewMode string `json:"view_mode"`
	Target   string `json:"target"`
}

func openEvent(id uint) OpenEventAction {
	return OpenEventAction{EventID: id, ViewMode: "form", Target: "modal"}
}

// ReminderService creates calendar reminders for document expirations.
type ReminderService struct {
	docs   repository.DocumentStore
	events repository.EventStore
}

func NewReminderService(docs repository.DocumentStore, events repository.EventStore) *ReminderService {
	return &ReminderService{docs: docs, events: events}
}

// CreateReminder creates a one-hour calendar event at 09:00 on the document's
// expiration date, interpreted in the acting user's timezone and stored in
// UTC, then links it onto the document. Idempotent: a document that already
// has a linked event just gets an action opening that event. The vehicle's
// driver, when assigned, is invited.
func (s *ReminderService) CreateReminder(ctx context.Context, docID uint, loc *time.Location) (OpenEventAction, error) {
	doc, err := s.docs.ByID(ctx, docID)
	if err != nil {
		return OpenEventAction{}, err
	}

	if doc.ExpirationDate == nil {
		return OpenEventAction{}, ErrNoExpirationDate
	}

	if doc.CalendarEventID != 0 {
		return openEvent(doc.CalendarEventID), nil
	}

	exp := *doc.ExpirationDate
	start := time.Date(exp.Year(), exp.Month(), exp.Day(), 9, 0, 0, 0, loc).UTC()

	event := &models.CalendarEvent{
		Name:             fmt.Sprintf("Expiration: %s - %s", doc.Name, doc.Vehicle.Name),
		Start:            start,
		Stop:             start.Add(time.Hour),
		AllDay:           false,
		AttendeeDriverID: doc.Vehicle.DriverID,
		SourceType:       models.DocumentSourceType,
		SourceID:         doc.ID,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return OpenEventAction{}, err
	}

	// Linking happens here and only here, as one explicit set-once step.
	if err := s.docs.LinkEvent(ctx, doc.ID, event.ID); err != nil {
		return OpenEventAction{}, err
	}

	return openEvent(event.ID), nil
}
