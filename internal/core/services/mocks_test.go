package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/core/domain"
	portsrepo "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/repositories"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/erp"
)

// MockSessionRepository is a mock type for the SessionRepositoryFacade interface
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) ListActiveSessions(ctx context.Context) ([]domain.SessionSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SessionSummary), args.Error(1)
}

func (m *MockSessionRepository) SaveSessionWithItems(ctx context.Context, session domain.Session, items []domain.Item) error {
	args := m.Called(ctx, session, items)
	return args.Error(0)
}

func (m *MockSessionRepository) ApplyQCApproval(ctx context.Context, sessionID string, approverID string, results []domain.ItemQCResult, now time.Time) (int, int, error) {
	args := m.Called(ctx, sessionID, approverID, results, now)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockSessionRepository) RecordTransferResult(ctx context.Context, sessionID string, docEntry int, docNum int, log domain.ActivityLog, updatedBy string, now time.Time) error {
	args := m.Called(ctx, sessionID, docEntry, docNum, log, updatedBy, now)
	return args.Error(0)
}

var _ portsrepo.SessionRepositoryFacade = (*MockSessionRepository)(nil)

// MockItemRepository is a mock type for the ItemRepositoryFacade interface
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindItemsBySessionID(ctx context.Context, sessionID string) ([]domain.Item, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

var _ portsrepo.ItemRepositoryFacade = (*MockItemRepository)(nil)

// MockLabelRepository is a mock type for the LabelRepositoryFacade interface
type MockLabelRepository struct {
	mock.Mock
}

func (m *MockLabelRepository) ListLabelsBySessionID(ctx context.Context, sessionID string) ([]domain.Label, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Label), args.Error(1)
}

func (m *MockLabelRepository) CountLabelsBySessionID(ctx context.Context, sessionID string) (int, error) {
	args := m.Called(ctx, sessionID)
	return args.Int(0), args.Error(1)
}

func (m *MockLabelRepository) SaveLabels(ctx context.Context, labels []domain.Label) error {
	args := m.Called(ctx, labels)
	return args.Error(0)
}

var _ portsrepo.LabelRepositoryFacade = (*MockLabelRepository)(nil)

// MockActivityLogRepository is a mock type for the ActivityLogRepositoryFacade interface
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) SaveLog(ctx context.Context, log domain.ActivityLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockActivityLogRepository) ListLogsBySessionID(ctx context.Context, sessionID string) ([]domain.ActivityLog, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLog), args.Error(1)
}

var _ portsrepo.ActivityLogRepositoryFacade = (*MockActivityLogRepository)(nil)

// MockERPGateway is a mock type for the ERPGateway interface
type MockERPGateway struct {
	mock.Mock
}

func (m *MockERPGateway) GetGRPODocument(ctx context.Context, docEntry int) (*erp.GRPODocument, []erp.GRPOLine, error) {
	args := m.Called(ctx, docEntry)
	var doc *erp.GRPODocument
	if args.Get(0) != nil {
		doc = args.Get(0).(*erp.GRPODocument)
	}
	var lines []erp.GRPOLine
	if args.Get(1) != nil {
		lines = args.Get(1).([]erp.GRPOLine)
	}
	return doc, lines, args.Error(2)
}

func (m *MockERPGateway) ListSeries(ctx context.Context) ([]erp.Series, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]erp.Series), args.Error(1)
}

func (m *MockERPGateway) ListDocumentsBySeries(ctx context.Context, seriesID int) ([]erp.DocumentRef, error) {
	args := m.Called(ctx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]erp.DocumentRef), args.Error(1)
}

func (m *MockERPGateway) GetItemClassification(ctx context.Context, itemCode string) (*erp.ItemClassification, error) {
	args := m.Called(ctx, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*erp.ItemClassification), args.Error(1)
}

func (m *MockERPGateway) ListBatchNumbers(ctx context.Context, docEntry int) ([]map[string]any, error) {
	args := m.Called(ctx, docEntry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *MockERPGateway) ListWarehouses(ctx context.Context) ([]erp.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]erp.Warehouse), args.Error(1)
}

func (m *MockERPGateway) ListBinLocations(ctx context.Context, warehouseCode string) ([]erp.BinLocation, error) {
	args := m.Called(ctx, warehouseCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]erp.BinLocation), args.Error(1)
}

func (m *MockERPGateway) CreateStockTransfer(ctx context.Context, transfer erp.StockTransfer) (*erp.StockTransferResult, error) {
	args := m.Called(ctx, transfer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*erp.StockTransferResult), args.Error(1)
}

var _ portsrepo.ERPGateway = (*MockERPGateway)(nil)
