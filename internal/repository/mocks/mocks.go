package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"fleet_docs/internal/models"
)

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) ByID(ctx context.Context, id uint) (*models.Document, error) {
	args := m.Called(ctx, id)
	if doc, ok := args.Get(0).(*models.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentStore) ExpiringOnOrBefore(ctx context.Context, limit time.Time) ([]models.Document, error) {
	args := m.Called(ctx, limit)
	if docs, ok := args.Get(0).([]models.Document); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentStore) LinkEvent(ctx context.Context, docID, eventID uint) error {
	args := m.Called(ctx, docID, eventID)
	return args.Error(0)
}

type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) Create(ctx context.Context, event *models.CalendarEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockFeedStore struct {
	mock.Mock
}

func (m *MockFeedStore) Post(ctx context.Context, vehicleID uint, body string) error {
	args := m.Called(ctx, vehicleID, body)
	return args.Error(0)
}

type MockActivityStore struct {
	mock.Mock
}

func (m *MockActivityStore) Schedule(ctx context.Context, activity *models.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}
