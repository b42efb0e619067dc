package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fleet_docs/internal/models"
	"fleet_docs/internal/repository/mocks"
)

func expirationDate(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCreateReminderRequiresExpirationDate(t *testing.T) {
	ctx := context.Background()
	docs := new(mocks.MockDocumentStore)
	events := new(mocks.MockEventStore)

	docs.On("ByID", ctx, uint(7)).Return(&models.Document{
		Model: gorm.Model{ID: 7},
		Name:  "Insurance policy",
	}, nil)

	svc := NewReminderService(docs, events)
	_, err := svc.CreateReminder(ctx, 7, time.UTC)

	assert.ErrorIs(t, err, ErrNoExpirationDate)
	events.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	docs.AssertNotCalled(t, "LinkEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateReminderOpensExistingEvent(t *testing.T) {
	ctx := context.Background()
	docs := new(mocks.MockDocumentStore)
	events := new(mocks.MockEventStore)

	docs.On("ByID", ctx, uint(7)).Return(&models.Document{
		Model:           gorm.Model{ID: 7},
		Name:            "Insurance policy",
		ExpirationDate:  expirationDate(2026, time.September, 15),
		CalendarEventID: 42,
	}, nil)

	svc := NewReminderService(docs, events)
	action, err := svc.CreateReminder(ctx, 7, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, uint(42), action.EventID)
	assert.Equal(t, "form", action.ViewMode)
	assert.Equal(t, "modal", action.Target)
	events.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReminderCreatesAndLinksEvent(t *testing.T) {
	ctx := context.Background()
	docs := new(mocks.MockDocumentStore)
	events := new(mocks.MockEventStore)

	docs.On("ByID", ctx, uint(7)).Return(&models.Document{
		Model:          gorm.Model{ID: 7},
		Name:           "Compulsory insurance",
		ExpirationDate: expirationDate(2026, time.September, 15),
		VehicleID:      4,
		Vehicle: models.Vehicle{
			Model:    gorm.Model{ID: 4},
			Name:     "Truck 12",
			DriverID: 3,
		},
	}, nil)

	var created *models.CalendarEvent
	events.On("Create", ctx, mock.AnythingOfType("*models.CalendarEvent")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.CalendarEvent)
			created.ID = 42
		}).
		Return(nil)
	docs.On("LinkEvent", ctx, uint(7), uint(42)).Return(nil)

	// Acting user sits five hours behind UTC; 09:00 local is 14:00 UTC.
	bogota := time.FixedZone("UTC-5", -5*3600)

	svc := NewReminderService(docs, events)
	action, err := svc.CreateReminder(ctx, 7, bogota)

	require.NoError(t, err)
	assert.Equal(t, uint(42), action.EventID)

	require.NotNil(t, created)
	assert.Equal(t, "Expiration: Compulsory insurance - Truck 12", created.Name)
	assert.Equal(t, time.Date(2026, time.September, 15, 14, 0, 0, 0, time.UTC), created.Start)
	assert.Equal(t, time.Hour, created.Stop.Sub(created.Start))
	assert.False(t, created.AllDay)
	assert.Equal(t, uint(3), created.AttendeeDriverID)
	assert.Equal(t, models.DocumentSourceType, created.SourceType)
	assert.Equal(t, uint(7), created.SourceID)

	docs.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestCreateReminderIsIdempotent(t *testing.T) {
	ctx := context.Background()
	docs := new(mocks.MockDocumentStore)
	events := new(mocks.MockEventStore)

	unlinked := &models.Document{
		Model:          gorm.Model{ID: 7},
		Name:           "Technical review",
		ExpirationDate: expirationDate(2026, time.October, 1),
		Vehicle:        models.Vehicle{Name: "Van 3"},
	}
	linked := *unlinked
	linked.CalendarEventID = 42

	docs.On("ByID", ctx, uint(7)).Return(unlinked, nil).Once()
	docs.On("ByID", ctx, uint(7)).Return(&linked, nil).Once()
	events.On("Create", ctx, mock.AnythingOfType("*models.CalendarEvent")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.CalendarEvent).ID = 42
		}).
		Return(nil).Once()
	docs.On("LinkEvent", ctx, uint(7), uint(42)).Return(nil).Once()

	svc := NewReminderService(docs, events)

	first, err := svc.CreateReminder(ctx, 7, time.UTC)
	require.NoError(t, err)
	second, err := svc.CreateReminder(ctx, 7, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, first.EventID, second.EventID)
	events.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreateReminderPropagatesStoreErrors(t *testing.T) {
	ctx := context.Background()
	docs := new(mocks.MockDocumentStore)
	events := new(mocks.MockEventStore)

	storeErr := errors.New("connection refused")
	docs.On("ByID", ctx, uint(7)).Return(nil, storeErr)

	svc := NewReminderService(docs, events)
	_, err := svc.CreateReminder(ctx, 7, time.UTC)

	assert.ErrorIs(t, err, storeErr)
}
