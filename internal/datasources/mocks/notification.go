package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

type MockNotificationLister struct{ mock.Mock }

type MockNotificationListerExpecter struct{ m *mock.Mock }

func NewMockNotificationLister(t TestingT) *MockNotificationLister {
	m := &MockNotificationLister{}
	register(&m.Mock, t)
	return m
}

func (m *MockNotificationLister) EXPECT() *MockNotificationListerExpecter {
	return &MockNotificationListerExpecter{m: &m.Mock}
}

func (e *MockNotificationListerExpecter) ListNotifications(ctx, userID any) *mock.Call {
	return e.m.On("ListNotifications", ctx, userID)
}

func (m *MockNotificationLister) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	return ret[[]domain.Notification](args, 0), args.Error(1)
}

type MockUnreadNotificationCounter struct{ mock.Mock }

type MockUnreadNotificationCounterExpecter struct{ m *mock.Mock }

func NewMockUnreadNotificationCounter(t TestingT) *MockUnreadNotificationCounter {
	m := &MockUnreadNotificationCounter{}
	register(&m.Mock, t)
	return m
}

func (m *MockUnreadNotificationCounter) EXPECT() *MockUnreadNotificationCounterExpecter {
	return &MockUnreadNotificationCounterExpecter{m: &m.Mock}
}

func (e *MockUnreadNotificationCounterExpecter) CountUnreadNotifications(ctx, userID any) *mock.Call {
	return e.m.On("CountUnreadNotifications", ctx, userID)
}

func (m *MockUnreadNotificationCounter) CountUnreadNotifications(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return ret[int64](args, 0), args.Error(1)
}

type MockNotificationCreator struct{ mock.Mock }

type MockNotificationCreatorExpecter struct{ m *mock.Mock }

func NewMockNotificationCreator(t TestingT) *MockNotificationCreator {
	m := &MockNotificationCreator{}
	register(&m.Mock, t)
	return m
}

func (m *MockNotificationCreator) EXPECT() *MockNotificationCreatorExpecter {
	return &MockNotificationCreatorExpecter{m: &m.Mock}
}

func (e *MockNotificationCreatorExpecter) CreateNotification(ctx, n any) *mock.Call {
	return e.m.On("CreateNotification", ctx, n)
}

func (m *MockNotificationCreator) CreateNotification(
	ctx context.Context,
	n domain.Notification,
) (domain.Notification, bool, error) {
	args := m.Called(ctx, n)
	return ret[domain.Notification](args, 0), args.Bool(1), args.Error(2)
}

type MockNotificationReadMarker struct{ mock.Mock }

type MockNotificationReadMarkerExpecter struct{ m *mock.Mock }

func NewMockNotificationReadMarker(t TestingT) *MockNotificationReadMarker {
	m := &MockNotificationReadMarker{}
	register(&m.Mock, t)
	return m
}

func (m *MockNotificationReadMarker) EXPECT() *MockNotificationReadMarkerExpecter {
	return &MockNotificationReadMarkerExpecter{m: &m.Mock}
}

func (e *MockNotificationReadMarkerExpecter) MarkNotificationRead(ctx, userID, notificationID any) *mock.Call {
	return e.m.On("MarkNotificationRead", ctx, userID, notificationID)
}

func (m *MockNotificationReadMarker) MarkNotificationRead(
	ctx context.Context,
	userID, notificationID string,
) (bool, error) {
	args := m.Called(ctx, userID, notificationID)
	return args.Bool(0), args.Error(1)
}

type MockAllNotificationsReadMarker struct{ mock.Mock }

type MockAllNotificationsReadMarkerExpecter struct{ m *mock.Mock }

func NewMockAllNotificationsReadMarker(t TestingT) *MockAllNotificationsReadMarker {
	m := &MockAllNotificationsReadMarker{}
	register(&m.Mock, t)
	return m
}

func (m *MockAllNotificationsReadMarker) EXPECT() *MockAllNotificationsReadMarkerExpecter {
	return &MockAllNotificationsReadMarkerExpecter{m: &m.Mock}
}

func (e *MockAllNotificationsReadMarkerExpecter) MarkAllNotificationsRead(ctx, userID any) *mock.Call {
	return e.m.On("MarkAllNotificationsRead", ctx, userID)
}

func (m *MockAllNotificationsReadMarker) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return ret[int64](args, 0), args.Error(1)
}

type MockNotificationDeleter struct{ mock.Mock }

type MockNotificationDeleterExpecter struct{ m *mock.Mock }

func NewMockNotificationDeleter(t TestingT) *MockNotificationDeleter {
	m := &MockNotificationDeleter{}
	register(&m.Mock, t)
	return m
}

func (m *MockNotificationDeleter) EXPECT() *MockNotificationDeleterExpecter {
	return &MockNotificationDeleterExpecter{m: &m.Mock}
}

func (e *MockNotificationDeleterExpecter) DeleteNotification(ctx, userID, notificationID any) *mock.Call {
	return e.m.On("DeleteNotification", ctx, userID, notificationID)
}

func (m *MockNotificationDeleter) DeleteNotification(
	ctx context.Context,
	userID, notificationID string,
) (bool, error) {
	args := m.Called(ctx, userID, notificationID)
	return args.Bool(0), args.Error(1)
}

type MockNotificationPreferencesGetter struct{ mock.Mock }

type MockNotificationPreferencesGetterExpecter struct{ m *mock.Mock }

func NewMockNotificationPreferencesGetter(t TestingT) *MockNotificationPreferencesGetter {
	m := &MockNotificationPreferencesGetter{}
	register(&m.Mock, t)
	return m
}

func (m *MockNotificationPreferencesGetter) EXPECT() *MockNotificationPreferencesGetterExpecter {
	return &MockNotificationPreferencesGetterExpecter{m: &m.Mock}
}

func (e *MockNotificationPreferencesGetterExpecter) GetNotificationPreferences(ctx, userID any) *mock.Call {
	return e.m.On("GetNotificationPreferences", ctx, userID)
}

func (m *MockNotificationPreferencesGetter) GetNotificationPreferences(
	ctx context.Context,
	userID string,
) (domain.NotificationPreferences, error) {
	args := m.Called(ctx, userID)
	return ret[domain.NotificationPreferences](args, 0), args.Error(1)
}

type MockNotificationPreferencesUpdater struct{ mock.Mock }

type MockNotificationPreferencesUpdaterExpecter struct{ m *mock.Mock }

func NewMockNotificationPreferencesUpdater(t TestingT) *MockNotificationPreferencesUpdater {
	m := &MockNotificationPreferencesUpdater{}
	register(&m.Mock, t)
	return m
}

func (m *MockNotificationPreferencesUpdater) EXPECT() *MockNotificationPreferencesUpdaterExpecter {
	return &MockNotificationPreferencesUpdaterExpecter{m: &m.Mock}
}

func (e *MockNotificationPreferencesUpdaterExpecter) UpdateNotificationPreferences(ctx, userID, update any) *mock.Call {
	return e.m.On("UpdateNotificationPreferences", ctx, userID, update)
}

func (m *MockNotificationPreferencesUpdater) UpdateNotificationPreferences(
	ctx context.Context,
	userID string,
	update domain.NotificationPreferencesUpdate,
) (domain.NotificationPreferences, error) {
	args := m.Called(ctx, userID, update)
	return ret[domain.NotificationPreferences](args, 0), args.Error(1)
}
