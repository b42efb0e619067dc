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

func newSweepMocks() (*mocks.MockDocumentStore, *mocks.MockFeedStore, *mocks.MockActivityStore, *SweepService) {
	docs := new(mocks.MockDocumentStore)
	feed := new(mocks.MockFeedStore)
	activities := new(mocks.MockActivityStore)
	return docs, feed, activities, NewSweepService(docs, feed, activities)
}

func TestSweepSelectionWindow(t *testing.T) {
	ctx := context.Background()
	docs, _, _, svc := newSweepMocks()

	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	wantLimit := time.Date(2026, time.September, 29, 0, 0, 0, 0, time.UTC)

	docs.On("ExpiringOnOrBefore", ctx, wantLimit).Return([]models.Document{}, nil)

	require.NoError(t, svc.Run(ctx, today))
	docs.AssertExpectations(t)
}

func TestSweepExpiredDocumentNotifiesManager(t *testing.T) {
	ctx := context.Background()
	docs, feed, activities, svc := newSweepMocks()

	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	exp := time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)

	docs.On("ExpiringOnOrBefore", ctx, mock.Anything).Return([]models.Document{{
		Model:          gorm.Model{ID: 7},
		Name:           "SOAT",
		ExpirationDate: &exp,
		VehicleID:      4,
		Vehicle: models.Vehicle{
			Model:     gorm.Model{ID: 4},
			Name:      "Truck 12",
			ManagerID: 9,
		},
	}}, nil)

	wantMessage := "ATTENTION! The document 'SOAT' for vehicle 'Truck 12' expired on 25/08/2026."
	feed.On("Post", ctx, uint(4), wantMessage).Return(nil)
	activities.On("Schedule", ctx, mock.MatchedBy(func(a *models.Activity) bool {
		return a.UserID == 9 &&
			a.DocumentID == 7 &&
			a.VehicleID == 4 &&
			a.Summary == wantMessage &&
			a.DueDate.Equal(exp)
	})).Return(nil)

	require.NoError(t, svc.Run(ctx, today))
	feed.AssertExpectations(t)
	activities.AssertExpectations(t)
}

func TestSweepUpcomingDocumentFallsBackToDriverUser(t *testing.T) {
	ctx := context.Background()
	docs, feed, activities, svc := newSweepMocks()

	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	exp := time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC)

	docs.On("ExpiringOnOrBefore", ctx, mock.Anything).Return([]models.Document{{
		Model:          gorm.Model{ID: 8},
		Name:           "Technical review",
		ExpirationDate: &exp,
		VehicleID:      4,
		Vehicle: models.Vehicle{
			Model:  gorm.Model{ID: 4},
			Name:   "Truck 12",
			Driver: &models.Driver{UserID: 5},
		},
	}}, nil)

	wantMessage := "The document 'Technical review' for vehicle 'Truck 12' expires on 09/09/2026 (in 10 days)."
	feed.On("Post", ctx, uint(4), wantMessage).Return(nil)
	activities.On("Schedule", ctx, mock.MatchedBy(func(a *models.Activity) bool {
		return a.UserID == 5 && a.Summary == wantMessage
	})).Return(nil)

	require.NoError(t, svc.Run(ctx, today))
	feed.AssertExpectations(t)
	activities.AssertExpectations(t)
}

func TestSweepWithoutResponsibleUserPostsFeedOnly(t *testing.T) {
	ctx := context.Background()
	docs, feed, activities, svc := newSweepMocks()

	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	exp := time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC)

	docs.On("ExpiringOnOrBefore", ctx, mock.Anything).Return([]models.Document{{
		Model:          gorm.Model{ID: 8},
		Name:           "Property card",
		ExpirationDate: &exp,
		VehicleID:      4,
		Vehicle: models.Vehicle{
			Model: gorm.Model{ID: 4},
			Name:  "Truck 12",
			// No manager; driver exists but has no user account.
			Driver: &models.Driver{UserID: 0},
		},
	}}, nil)

	feed.On("Post", ctx, uint(4), mock.AnythingOfType("string")).Return(nil)

	require.NoError(t, svc.Run(ctx, today))
	feed.AssertExpectations(t)
	activities.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
}

func TestSweepRepeatsNotificationsAcrossRuns(t *testing.T) {
	// A document still inside the window generates fresh notifications on
	// every run. There is no dedup.
	ctx := context.Background()
	docs, feed, activities, svc := newSweepMocks()

	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	exp := time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC)

	docs.On("ExpiringOnOrBefore", ctx, mock.Anything).Return([]models.Document{{
		Model:          gorm.Model{ID: 8},
		Name:           "Insurance policy",
		ExpirationDate: &exp,
		VehicleID:      4,
		Vehicle: models.Vehicle{
			Model:     gorm.Model{ID: 4},
			Name:      "Truck 12",
			ManagerID: 9,
		},
	}}, nil)
	feed.On("Post", ctx, uint(4), mock.AnythingOfType("string")).Return(nil)
	activities.On("Schedule", ctx, mock.Anything).Return(nil)

	require.NoError(t, svc.Run(ctx, today))
	require.NoError(t, svc.Run(ctx, today))

	feed.AssertNumberOfCalls(t, "Post", 2)
	activities.AssertNumberOfCalls(t, "Schedule", 2)
}

func TestSweepAbortsOnStoreError(t *testing.T) {
	ctx := context.Background()
	docs, feed, activities, svc := newSweepMocks()

	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	exp := time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC)

	docs.On("ExpiringOnOrBefore", ctx, mock.Anything).Return([]models.Document{{
		Model:          gorm.Model{ID: 8},
		Name:           "Insurance policy",
		ExpirationDate: &exp,
		VehicleID:      4,
		Vehicle:        models.Vehicle{Model: gorm.Model{ID: 4}, Name: "Truck 12", ManagerID: 9},
	}}, nil)

	postErr := errors.New("feed unavailable")
	feed.On("Post", ctx, uint(4), mock.AnythingOfType("string")).Return(postErr)

	err := svc.Run(ctx, today)
	assert.ErrorIs(t, err, postErr)
	activities.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
}
