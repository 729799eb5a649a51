package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/apperrors"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
	portssvc "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/services"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/services"
)

type LabelServiceTestSuite struct {
	suite.Suite
	mockSessionRepo *MockSessionRepository
	mockItemRepo    *MockItemRepository
	mockLabelRepo   *MockLabelRepository
	mockLogRepo     *MockActivityLogRepository
	service         portssvc.LabelSvcFacade
}

func (suite *LabelServiceTestSuite) SetupTest() {
	suite.mockSessionRepo = new(MockSessionRepository)
	suite.mockItemRepo = new(MockItemRepository)
	suite.mockLabelRepo = new(MockLabelRepository)
	suite.mockLogRepo = new(MockActivityLogRepository)
	suite.service = services.NewLabelService(suite.mockSessionRepo, suite.mockItemRepo, suite.mockLabelRepo, suite.mockLogRepo)
}

func (suite *LabelServiceTestSuite) testSession(sessionID string) *domain.Session {
	return &domain.Session{
		SessionID:   sessionID,
		SessionCode: "GRPO-1201-20260814120000",
		Status:      domain.SessionInProgress,
	}
}

// Three items: A approved at 3, B approved at 0, C approved at 2.7. The run
// mints 3 labels for A and 2 for C, five in total, one unit each.
func (suite *LabelServiceTestSuite) TestGenerateLabels_WholeUnitsOnly() {
	ctx := context.Background()
	sessionID := uuid.NewString()
	actorID := uuid.NewString()

	items := []domain.Item{
		{ItemID: "item-a", SessionID: sessionID, ItemCode: "A", ItemName: "Widget A", QCStatus: domain.QCApproved, ApprovedQuantity: decimal.NewFromInt(3), FromWarehouse: "WH01", ToWarehouse: "WH02"},
		{ItemID: "item-b", SessionID: sessionID, ItemCode: "B", ItemName: "Widget B", QCStatus: domain.QCApproved, ApprovedQuantity: decimal.Zero},
		{ItemID: "item-c", SessionID: sessionID, ItemCode: "C", ItemName: "Widget C", QCStatus: domain.QCApproved, ApprovedQuantity: decimal.NewFromFloat(2.7), FromWarehouse: "WH01", ToWarehouse: "WH02"},
	}

	suite.mockSessionRepo.On("FindSessionByID", ctx, sessionID).Return(suite.testSession(sessionID), nil).Once()
	suite.mockLabelRepo.On("CountLabelsBySessionID", ctx, sessionID).Return(0, nil).Once()
	suite.mockItemRepo.On("FindItemsBySessionID", ctx, sessionID).Return(items, nil).Once()
	suite.mockLabelRepo.On("SaveLabels", ctx, mock.AnythingOfType("[]domain.Label")).Return(nil).Once()
	suite.mockLogRepo.On("SaveLog", ctx, mock.MatchedBy(func(log domain.ActivityLog) bool {
		return log.Action == domain.ActionLabelsGenerated
	})).Return(nil).Once()

	labels, err := suite.service.GenerateLabels(ctx, sessionID, actorID)

	suite.Require().NoError(err)
	suite.Require().Len(labels, 5)

	// A gets labels 1..3, C gets labels 1..2
	suite.Equal("item-a", labels[0].ItemID)
	suite.Equal(1, labels[0].LabelNumber)
	suite.Equal(3, labels[0].TotalLabels)
	suite.Equal(3, labels[2].LabelNumber)
	suite.Equal("item-c", labels[3].ItemID)
	suite.Equal(1, labels[3].LabelNumber)
	suite.Equal(2, labels[3].TotalLabels)
	suite.Equal(2, labels[4].LabelNumber)

	for _, label := range labels {
		suite.True(label.Quantity.Equal(decimal.NewFromInt(1)))
	}

	var payload domain.LabelPayload
	suite.Require().NoError(json.Unmarshal([]byte(labels[4].Payload), &payload))
	suite.Equal("2 of 2", payload.Label)
	suite.Equal("C", payload.ItemCode)
	suite.Equal("GRPO-1201-20260814120000", payload.SessionCode)

	suite.mockLabelRepo.AssertExpectations(suite.T())
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *LabelServiceTestSuite) TestGenerateLabels_AlreadyMinted() {
	ctx := context.Background()
	sessionID := uuid.NewString()

	suite.mockSessionRepo.On("FindSessionByID", ctx, sessionID).Return(suite.testSession(sessionID), nil).Once()
	suite.mockLabelRepo.On("CountLabelsBySessionID", ctx, sessionID).Return(5, nil).Once()

	labels, err := suite.service.GenerateLabels(ctx, sessionID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(labels)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockLabelRepo.AssertNotCalled(suite.T(), "SaveLabels")
}

func (suite *LabelServiceTestSuite) TestGenerateLabels_NoApprovedItems() {
	ctx := context.Background()
	sessionID := uuid.NewString()

	items := []domain.Item{
		{ItemID: "item-a", SessionID: sessionID, QCStatus: domain.QCPending, ReceivedQuantity: decimal.NewFromInt(3)},
		{ItemID: "item-b", SessionID: sessionID, QCStatus: domain.QCRejected, RejectedQuantity: decimal.NewFromInt(2)},
	}

	suite.mockSessionRepo.On("FindSessionByID", ctx, sessionID).Return(suite.testSession(sessionID), nil).Once()
	suite.mockLabelRepo.On("CountLabelsBySessionID", ctx, sessionID).Return(0, nil).Once()
	suite.mockItemRepo.On("FindItemsBySessionID", ctx, sessionID).Return(items, nil).Once()

	labels, err := suite.service.GenerateLabels(ctx, sessionID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(labels)
	suite.ErrorIs(err, apperrors.ErrNoApprovedItems)
}

// An item approved at 0.4 is eligible but floors to zero labels; the run
// fails rather than silently minting nothing.
func (suite *LabelServiceTestSuite) TestGenerateLabels_FractionOnly() {
	ctx := context.Background()
	sessionID := uuid.NewString()

	items := []domain.Item{
		{ItemID: "item-a", SessionID: sessionID, QCStatus: domain.QCApproved, ApprovedQuantity: decimal.NewFromFloat(0.4)},
	}

	suite.mockSessionRepo.On("FindSessionByID", ctx, sessionID).Return(suite.testSession(sessionID), nil).Once()
	suite.mockLabelRepo.On("CountLabelsBySessionID", ctx, sessionID).Return(0, nil).Once()
	suite.mockItemRepo.On("FindItemsBySessionID", ctx, sessionID).Return(items, nil).Once()

	labels, err := suite.service.GenerateLabels(ctx, sessionID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(labels)
	suite.ErrorIs(err, apperrors.ErrNoLabelsGenerated)
	suite.mockLabelRepo.AssertNotCalled(suite.T(), "SaveLabels")
}

func (suite *LabelServiceTestSuite) TestGenerateLabels_BatchNumberFromFirstSplit() {
	ctx := context.Background()
	sessionID := uuid.NewString()

	items := []domain.Item{{
		ItemID:           "item-a",
		SessionID:        sessionID,
		ItemCode:         "A",
		IsBatchItem:      true,
		QCStatus:         domain.QCApproved,
		ApprovedQuantity: decimal.NewFromInt(2),
		Splits: []domain.Split{
			{SplitID: uuid.NewString(), ItemID: "item-a", SplitNumber: 1, BatchNumber: "B-100"},
			{SplitID: uuid.NewString(), ItemID: "item-a", SplitNumber: 2, BatchNumber: "B-200"},
		},
	}}

	suite.mockSessionRepo.On("FindSessionByID", ctx, sessionID).Return(suite.testSession(sessionID), nil).Once()
	suite.mockLabelRepo.On("CountLabelsBySessionID", ctx, sessionID).Return(0, nil).Once()
	suite.mockItemRepo.On("FindItemsBySessionID", ctx, sessionID).Return(items, nil).Once()
	suite.mockLabelRepo.On("SaveLabels", ctx, mock.AnythingOfType("[]domain.Label")).Return(nil).Once()
	suite.mockLogRepo.On("SaveLog", ctx, mock.AnythingOfType("domain.ActivityLog")).Return(nil).Once()

	labels, err := suite.service.GenerateLabels(ctx, sessionID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().Len(labels, 2)
	suite.Equal("B-100", labels[0].BatchNumber)
	suite.Equal("B-100", labels[1].BatchNumber)
}

func (suite *LabelServiceTestSuite) TestListLabels_Empty() {
	ctx := context.Background()
	sessionID := uuid.NewString()

	suite.mockSessionRepo.On("FindSessionByID", ctx, sessionID).Return(suite.testSession(sessionID), nil).Once()
	suite.mockLabelRepo.On("ListLabelsBySessionID", ctx, sessionID).Return([]domain.Label(nil), nil).Once()

	labels, err := suite.service.ListLabels(ctx, sessionID)

	suite.Require().NoError(err)
	suite.NotNil(labels)
	suite.Empty(labels)
}

func TestLabelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LabelServiceTestSuite))
}
