package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/apperrors"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
	portssvc "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/services"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/services"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/dto"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/erp"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockSessionRepo *MockSessionRepository
	mockItemRepo    *MockItemRepository
	mockLogRepo     *MockActivityLogRepository
	mockGateway     *MockERPGateway
	service         portssvc.SessionSvcFacade
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.mockSessionRepo = new(MockSessionRepository)
	suite.mockItemRepo = new(MockItemRepository)
	suite.mockLogRepo = new(MockActivityLogRepository)
	suite.mockGateway = new(MockERPGateway)
	suite.service = services.NewSessionService(suite.mockSessionRepo, suite.mockItemRepo, suite.mockLogRepo, suite.mockGateway)
}

func (suite *SessionServiceTestSuite) TestCreateSession_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	req := dto.CreateSessionRequest{
		GRPODocEntry: 1201,
		GRPODocNum:   50031,
		SeriesID:     7,
		VendorCode:   "V0001",
		VendorName:   "Acme Supplies",
		DocDate:      "2026-08-14",
		DocTotal:     decimal.NewFromInt(1500),
	}

	suite.mockSessionRepo.On("SaveSessionWithItems", ctx, mock.AnythingOfType("domain.Session"), []domain.Item(nil)).Return(nil).Once()
	suite.mockLogRepo.On("SaveLog", ctx, mock.MatchedBy(func(log domain.ActivityLog) bool {
		return log.Action == domain.ActionSessionCreated
	})).Return(nil).Once()

	session, err := suite.service.CreateSession(ctx, req, actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(session)
	suite.NotEmpty(session.SessionID)
	suite.True(strings.HasPrefix(session.SessionCode, "GRPO-1201-"))
	suite.Equal(domain.SessionDraft, session.Status)
	suite.Equal(req.VendorCode, session.VendorCode)
	suite.Equal(2026, session.DocDate.Year())
	suite.Nil(session.DocDueDate)
	suite.Equal(actorID, session.CreatedBy)
	suite.WithinDuration(time.Now(), session.CreatedAt, time.Second)

	suite.mockSessionRepo.AssertExpectations(suite.T())
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestCreateSession_InvalidDocDate() {
	ctx := context.Background()
	req := dto.CreateSessionRequest{
		GRPODocEntry: 1201,
		GRPODocNum:   50031,
		SeriesID:     7,
		VendorCode:   "V0001",
		VendorName:   "Acme Supplies",
		DocDate:      "14/08/2026",
	}

	session, err := suite.service.CreateSession(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "SaveSessionWithItems")
}

func (suite *SessionServiceTestSuite) TestImportSession_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	docEntry := 1201

	doc := &erp.GRPODocument{
		DocEntry:   docEntry,
		DocNum:     50031,
		Series:     7,
		CardCode:   "V0001",
		CardName:   "Acme Supplies",
		DocDate:    "2026-08-14",
		DocDueDate: "2026-08-28",
		DocTotal:   1500,
	}
	lines := []erp.GRPOLine{
		{DocEntry: docEntry, LineNum: 0, ItemCode: "A", ItemDescription: "Widget A", WarehouseCode: "WH01", Quantity: 3, Price: 100, LineTotal: 300},
		{DocEntry: docEntry, LineNum: 1, ItemCode: "B", ItemDescription: "Widget B", WarehouseCode: "WH01", Quantity: 2.5, Price: 480, LineTotal: 1200},
	}

	suite.mockGateway.On("GetGRPODocument", ctx, docEntry).Return(doc, lines, nil).Once()
	suite.mockSessionRepo.On("SaveSessionWithItems", ctx, mock.AnythingOfType("domain.Session"), mock.MatchedBy(func(items []domain.Item) bool {
		if len(items) != 2 {
			return false
		}
		return items[0].QCStatus == domain.QCPending &&
			items[0].BaseEntry == docEntry &&
			items[0].BaseLine == 0 &&
			items[1].ReceivedQuantity.Equal(decimal.NewFromFloat(2.5))
	})).Return(nil).Once()
	suite.mockLogRepo.On("SaveLog", ctx, mock.AnythingOfType("domain.ActivityLog")).Return(nil).Once()

	session, err := suite.service.ImportSession(ctx, docEntry, actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(session)
	suite.Equal(50031, session.GRPODocNum)
	suite.Equal("Acme Supplies", session.VendorName)
	suite.Require().NotNil(session.DocDueDate)
	suite.Equal(domain.SessionDraft, session.Status)

	suite.mockGateway.AssertExpectations(suite.T())
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestImportSession_UnknownDocument() {
	ctx := context.Background()
	suite.mockGateway.On("GetGRPODocument", ctx, 999).Return(nil, nil, nil).Once()

	session, err := suite.service.ImportSession(ctx, 999, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "SaveSessionWithItems")
}

func (suite *SessionServiceTestSuite) TestListActiveSessions_EmptyResult() {
	ctx := context.Background()
	suite.mockSessionRepo.On("ListActiveSessions", ctx).Return([]domain.SessionSummary(nil), nil).Once()

	summaries, err := suite.service.ListActiveSessions(ctx)

	suite.Require().NoError(err)
	suite.NotNil(summaries)
	suite.Empty(summaries)
}

func (suite *SessionServiceTestSuite) TestGetSessionDetail_NotFound() {
	ctx := context.Background()
	suite.mockSessionRepo.On("FindSessionByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	session, items, err := suite.service.GetSessionDetail(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(session)
	suite.Nil(items)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SessionServiceTestSuite) TestAddItem_Success() {
	ctx := context.Background()
	sessionID := uuid.NewString()
	actorID := uuid.NewString()
	req := dto.AddItemRequest{
		LineNum:          2,
		ItemCode:         "C",
		ItemName:         "Widget C",
		ReceivedQuantity: decimal.NewFromInt(4),
		FromWarehouse:    "WH01",
		BaseEntry:        1201,
		BaseLine:         2,
	}

	suite.mockSessionRepo.On("FindSessionByID", ctx, sessionID).Return(&domain.Session{SessionID: sessionID}, nil).Once()
	suite.mockItemRepo.On("SaveItem", ctx, mock.MatchedBy(func(item domain.Item) bool {
		return item.SessionID == sessionID && item.QCStatus == domain.QCPending && item.ApprovedQuantity.IsZero()
	})).Return(nil).Once()

	item, err := suite.service.AddItem(ctx, sessionID, req, actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.Equal("C", item.ItemCode)
	suite.Equal(actorID, item.CreatedBy)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestAddItem_SessionNotFound() {
	ctx := context.Background()
	suite.mockSessionRepo.On("FindSessionByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	item, err := suite.service.AddItem(ctx, "missing", dto.AddItemRequest{ItemCode: "C"}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SaveItem")
}

func (suite *SessionServiceTestSuite) TestListActivity_Success() {
	ctx := context.Background()
	sessionID := uuid.NewString()
	logs := []domain.ActivityLog{
		{LogID: uuid.NewString(), SessionID: sessionID, Action: domain.ActionSessionCreated},
		{LogID: uuid.NewString(), SessionID: sessionID, Action: domain.ActionQCApproved},
	}

	suite.mockSessionRepo.On("FindSessionByID", ctx, sessionID).Return(&domain.Session{SessionID: sessionID}, nil).Once()
	suite.mockLogRepo.On("ListLogsBySessionID", ctx, sessionID).Return(logs, nil).Once()

	got, err := suite.service.ListActivity(ctx, sessionID)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Equal(domain.ActionSessionCreated, got[0].Action)
}

func (suite *SessionServiceTestSuite) TestCreateSession_SaveError() {
	ctx := context.Background()
	req := dto.CreateSessionRequest{
		GRPODocEntry: 1201,
		GRPODocNum:   50031,
		SeriesID:     7,
		VendorCode:   "V0001",
		VendorName:   "Acme Supplies",
	}
	expectedErr := assert.AnError

	suite.mockSessionRepo.On("SaveSessionWithItems", ctx, mock.AnythingOfType("domain.Session"), []domain.Item(nil)).Return(expectedErr).Once()

	session, err := suite.service.CreateSession(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, expectedErr)
	suite.mockLogRepo.AssertNotCalled(suite.T(), "SaveLog")
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
