package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/apperrors"
	portssvc "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/services"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/dto"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/erp"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/utils"
)

type MasterDataHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockMasterData *MockMasterDataService
}

func (suite *MasterDataHandlerTestSuite) SetupTest() {
	suite.mockMasterData = new(MockMasterDataService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{
		Session:    new(MockSessionService),
		QC:         new(MockQCService),
		Label:      new(MockLabelService),
		Transfer:   new(MockTransferService),
		MasterData: suite.mockMasterData,
	})
}

func (suite *MasterDataHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	token, err := utils.GenerateJWT(uuid.NewString(), "", testJWTSecret, time.Hour, "wms-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *MasterDataHandlerTestSuite) TestListSeries_Success() {
	series := []erp.Series{{SeriesID: 7, SeriesName: "GRPO-2026", NextNumber: 5002}}
	suite.mockMasterData.On("ListSeries", mock.Anything).Return(series, nil).Once()

	w := suite.get("/api/v1/series")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SeriesListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Require().Len(resp.Series, 1)
	suite.Equal(7, resp.Series[0].SeriesID)
}

func (suite *MasterDataHandlerTestSuite) TestListSeries_ERPRejected() {
	suite.mockMasterData.On("ListSeries", mock.Anything).Return(nil, apperrors.ErrERPRejected).Once()

	w := suite.get("/api/v1/series")

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *MasterDataHandlerTestSuite) TestGetGRPODetails_EmptyDocument() {
	suite.mockMasterData.On("GetGRPODetails", mock.Anything, 1201).Return(nil, nil, nil).Once()

	w := suite.get("/api/v1/grpo-details/1201")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.GRPODetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Nil(resp.Document)
	suite.Equal("No data found for this document", resp.Message)
}

func (suite *MasterDataHandlerTestSuite) TestGetGRPODetails_InvalidDocEntry() {
	w := suite.get("/api/v1/grpo-details/abc")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMasterData.AssertNotCalled(suite.T(), "GetGRPODetails")
}

func (suite *MasterDataHandlerTestSuite) TestClassifyItem_BatchManaged() {
	classification := &erp.ItemClassification{ItemCode: "A", ItemName: "Widget A", BatchNum: "Y", SerialNum: "N"}
	suite.mockMasterData.On("ClassifyItem", mock.Anything, "A").Return(classification, nil).Once()

	w := suite.get("/api/v1/items/A/classification")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ItemClassificationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IsBatchItem)
	suite.False(resp.IsSerialItem)
	suite.False(resp.IsNonManaged)
	suite.Equal("Y", resp.BatchNum)
}

func (suite *MasterDataHandlerTestSuite) TestClassifyItem_NotFound() {
	suite.mockMasterData.On("ClassifyItem", mock.Anything, "ZZZ").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.get("/api/v1/items/ZZZ/classification")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *MasterDataHandlerTestSuite) TestListBins_Empty() {
	suite.mockMasterData.On("ListBinLocations", mock.Anything, "WH01").Return([]erp.BinLocation{}, nil).Once()

	w := suite.get("/api/v1/warehouses/WH01/bins")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.BinListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Empty(resp.Bins)
	suite.Equal("No bins found for this warehouse", resp.Message)
}

func (suite *MasterDataHandlerTestSuite) TestListWarehouses_Success() {
	warehouses := []erp.Warehouse{
		{WarehouseCode: "WH01", WarehouseName: "Receiving"},
		{WarehouseCode: "WH02", WarehouseName: "Finished Goods"},
	}
	suite.mockMasterData.On("ListWarehouses", mock.Anything).Return(warehouses, nil).Once()

	w := suite.get("/api/v1/warehouses")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.WarehouseListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Warehouses, 2)
	suite.Equal("WH02", resp.Warehouses[1].WarehouseCode)
}

func TestMasterDataHandler(t *testing.T) {
	suite.Run(t, new(MasterDataHandlerTestSuite))
}
