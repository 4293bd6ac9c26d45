package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"givehub/internal/billing"
	"givehub/internal/model"
)

// MockSubscriptionRepository is a mock implementation of SubscriptionRepository.
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, sub *model.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) LatestByMerchant(ctx context.Context, merchantID uuid.UUID, statuses []model.SubscriptionStatus) (*model.Subscription, error) {
	args := m.Called(ctx, merchantID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

// MockBillingProvider is a mock implementation of billing.Provider.
type MockBillingProvider struct {
	mock.Mock
}

func (m *MockBillingProvider) GetSubscription(ctx context.Context, providerSubID string) (*billing.SubscriptionState, error) {
	args := m.Called(ctx, providerSubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.SubscriptionState), args.Error(1)
}

func (m *MockBillingProvider) CreateCheckoutSession(ctx context.Context, params billing.CheckoutParams) (*billing.CheckoutSession, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.CheckoutSession), args.Error(1)
}

func cachedSubscription(status model.SubscriptionStatus) *model.Subscription {
	return &model.Subscription{
		ID:            uuid.New(),
		MerchantID:    uuid.New(),
		ProviderSubID: "sub_123",
		Status:        status,
		SyncedAt:      time.Now().Add(-time.Hour),
	}
}

func TestSubscriptionService_EnsureActive(t *testing.T) {
	tests := []struct {
		name         string
		cached       *model.Subscription
		state        *billing.SubscriptionState
		providerErr  error
		expectActive bool
		expectStatus model.SubscriptionStatus
		expectUpdate bool
	}{
		{
			name:         "active stays active",
			cached:       cachedSubscription(model.SubscriptionActive),
			state:        &billing.SubscriptionState{ID: "sub_123", Status: "active"},
			expectActive: true,
			expectStatus: model.SubscriptionActive,
			expectUpdate: false,
		},
		{
			name:         "trialing grants access",
			cached:       cachedSubscription(model.SubscriptionCanceled),
			state:        &billing.SubscriptionState{ID: "sub_123", Status: "trialing"},
			expectActive: true,
			expectStatus: model.SubscriptionTrialing,
			expectUpdate: true,
		},
		{
			name:   "pending cancellation treated as canceled",
			cached: cachedSubscription(model.SubscriptionActive),
			state: &billing.SubscriptionState{
				ID:                "sub_123",
				Status:            "active",
				CancelAtPeriodEnd: true,
			},
			expectActive: false,
			expectStatus: model.SubscriptionCanceled,
			expectUpdate: true,
		},
		{
			name:         "provider cancellation lands locally",
			cached:       cachedSubscription(model.SubscriptionActive),
			state:        &billing.SubscriptionState{ID: "sub_123", Status: "canceled"},
			expectActive: false,
			expectStatus: model.SubscriptionCanceled,
			expectUpdate: true,
		},
		{
			name:         "provider failure fails open on cached active",
			cached:       cachedSubscription(model.SubscriptionActive),
			providerErr:  errors.New("stripe is down"),
			expectActive: true,
			expectStatus: model.SubscriptionActive,
			expectUpdate: false,
		},
		{
			name:         "provider failure keeps cached canceled inactive",
			cached:       cachedSubscription(model.SubscriptionCanceled),
			providerErr:  errors.New("stripe is down"),
			expectActive: false,
			expectStatus: model.SubscriptionCanceled,
			expectUpdate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockSubscriptionRepository)
			mockProvider := new(MockBillingProvider)

			mockRepo.On("LatestByMerchant", mock.Anything, tt.cached.MerchantID, reconcileStatuses).Return(tt.cached, nil)
			if tt.providerErr != nil {
				mockProvider.On("GetSubscription", mock.Anything, "sub_123").Return(nil, tt.providerErr)
			} else {
				mockProvider.On("GetSubscription", mock.Anything, "sub_123").Return(tt.state, nil)
			}
			if tt.expectUpdate {
				mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Subscription")).Return(nil)
			}

			service := NewSubscriptionService(mockRepo, mockProvider)
			sub, active, err := service.EnsureActive(context.Background(), tt.cached.MerchantID)

			assert.NoError(t, err)
			assert.NotNil(t, sub)
			assert.Equal(t, tt.expectActive, active)
			assert.Equal(t, tt.expectStatus, sub.Status)

			mockRepo.AssertExpectations(t)
			mockProvider.AssertExpectations(t)
		})
	}
}

func TestSubscriptionService_EnsureActiveNoSubscription(t *testing.T) {
	mockRepo := new(MockSubscriptionRepository)
	mockProvider := new(MockBillingProvider)
	merchantID := uuid.New()

	mockRepo.On("LatestByMerchant", mock.Anything, merchantID, reconcileStatuses).Return(nil, gorm.ErrRecordNotFound)

	service := NewSubscriptionService(mockRepo, mockProvider)
	sub, active, err := service.EnsureActive(context.Background(), merchantID)

	assert.NoError(t, err)
	assert.Nil(t, sub)
	assert.False(t, active)
	mockProvider.AssertNotCalled(t, "GetSubscription", mock.Anything, mock.Anything)
}

func TestSubscriptionService_Record(t *testing.T) {
	mockRepo := new(MockSubscriptionRepository)
	mockProvider := new(MockBillingProvider)
	merchantID := uuid.New()

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Subscription")).Return(nil)

	service := NewSubscriptionService(mockRepo, mockProvider)
	sub, err := service.Record(context.Background(), merchantID, "sub_new", model.SubscriptionActive)

	assert.NoError(t, err)
	assert.Equal(t, merchantID, sub.MerchantID)
	assert.Equal(t, "sub_new", sub.ProviderSubID)
	assert.Equal(t, model.SubscriptionActive, sub.Status)
	assert.False(t, sub.SyncedAt.IsZero())
	mockRepo.AssertExpectations(t)
}
