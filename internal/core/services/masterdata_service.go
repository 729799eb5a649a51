package services

import (
	"context"
	"fmt"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/apperrors"
	portsrepo "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/repositories"
	portssvc "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/services"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/erp"
)

type masterDataService struct {
	gateway portsrepo.ERPGateway
}

// NewMasterDataService creates the ERP master-data lookup service.
func NewMasterDataService(gateway portsrepo.ERPGateway) portssvc.MasterDataSvcFacade {
	return &masterDataService{gateway: gateway}
}

var _ portssvc.MasterDataSvcFacade = (*masterDataService)(nil)

func (s *masterDataService) ListSeries(ctx context.Context) ([]erp.Series, error) {
	series, err := s.gateway.ListSeries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list GRPO series: %w", err)
	}
	if series == nil {
		return []erp.Series{}, nil
	}
	return series, nil
}

func (s *masterDataService) ListDocumentsBySeries(ctx context.Context, seriesID int) ([]erp.DocumentRef, error) {
	docs, err := s.gateway.ListDocumentsBySeries(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents for series %d: %w", seriesID, err)
	}
	if docs == nil {
		return []erp.DocumentRef{}, nil
	}
	return docs, nil
}

func (s *masterDataService) GetGRPODetails(ctx context.Context, docEntry int) (*erp.GRPODocument, []erp.GRPOLine, error) {
	doc, lines, err := s.gateway.GetGRPODocument(ctx, docEntry)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch GRPO document %d: %w", docEntry, err)
	}
	return doc, lines, nil
}

func (s *masterDataService) ClassifyItem(ctx context.Context, itemCode string) (*erp.ItemClassification, error) {
	info, err := s.gateway.GetItemClassification(ctx, itemCode)
	if err != nil {
		return nil, fmt.Errorf("failed to classify item %s: %w", itemCode, err)
	}
	if info == nil {
		return nil, fmt.Errorf("%w: item %s not found in ERP", apperrors.ErrNotFound, itemCode)
	}
	return info, nil
}

func (s *masterDataService) ListBatchNumbers(ctx context.Context, docEntry int) ([]map[string]any, error) {
	batches, err := s.gateway.ListBatchNumbers(ctx, docEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to list batch numbers for document %d: %w", docEntry, err)
	}
	if batches == nil {
		return []map[string]any{}, nil
	}
	return batches, nil
}

func (s *masterDataService) ListWarehouses(ctx context.Context) ([]erp.Warehouse, error) {
	warehouses, err := s.gateway.ListWarehouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	if warehouses == nil {
		return []erp.Warehouse{}, nil
	}
	return warehouses, nil
}

func (s *masterDataService) ListBinLocations(ctx context.Context, warehouseCode string) ([]erp.BinLocation, error) {
	bins, err := s.gateway.ListBinLocations(ctx, warehouseCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list bins for warehouse %s: %w", warehouseCode, err)
	}
	if bins == nil {
		return []erp.BinLocation{}, nil
	}
	return bins, nil
}
