package erp_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/apperrors"
	"github.com/pragavigithub/EmeraldBarcode20260113/internal/erp"
)

func newTestClient(t *testing.T, handler http.Handler) (*erp.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := erp.NewClient(erp.Config{
		ServerURL: server.URL,
		Username:  "manager",
		Password:  "secret",
		CompanyDB: "TESTDB",
		Timeout:   5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return client, server
}

func TestNewClient_RequiresServerURL(t *testing.T) {
	_, err := erp.NewClient(erp.Config{}, slog.Default())
	require.Error(t, err)
}

func TestLogin_SessionCookieRidesAlong(t *testing.T) {
	var sawCookie bool
	mux := http.NewServeMux()
	mux.HandleFunc("/b1s/v1/Login", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "TESTDB", creds["CompanyDB"])
		assert.Equal(t, "manager", creds["UserName"])
		assert.Equal(t, "secret", creds["Password"])

		http.SetCookie(w, &http.Cookie{Name: "B1SESSION", Value: "abc123", Path: "/"})
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/b1s/v1/SQLQueries('GET_GRPO_Series')/List", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("B1SESSION")
		if err == nil && cookie.Value == "abc123" {
			sawCookie = true
		}
		assert.Equal(t, "odata.maxpagesize=0", r.Header.Get("Prefer"))
		_, _ = w.Write([]byte(`{"value":[{"SeriesID":7,"SeriesName":"GRPO-2026","NextNumber":5002}]}`))
	})

	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	require.NoError(t, client.Login(ctx))

	series, err := client.ListSeries(ctx)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 7, series[0].SeriesID)
	assert.True(t, sawCookie, "session cookie should ride along after login")
}

func TestLogin_BadCredentials(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":{"value":"Login failed"}}}`))
	}))

	err := client.Login(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrERPRejected)
	assert.Contains(t, err.Error(), "Login failed")
}

func TestGetGRPODocument_DeduplicatesHeader(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/b1s/v1/$crossjoin"), "unexpected path %s", r.URL.Path)
		assert.Contains(t, r.URL.RawQuery, "DocEntry%20eq%201201")

		_, _ = w.Write([]byte(`{"value":[
			{"PurchaseDeliveryNotes":{"DocEntry":1201,"DocNum":5001,"Series":7,"CardCode":"V001","CardName":"Acme Metals","DocumentStatus":"bost_Open","DocDate":"2026-08-14","DocTotal":1500},
			 "PurchaseDeliveryNotes/DocumentLines":{"DocEntry":1201,"LineNum":0,"ItemCode":"A","WarehouseCode":"WH01","Quantity":3,"LineStatus":"bost_Open"}},
			{"PurchaseDeliveryNotes":{"DocEntry":1201,"DocNum":5001,"Series":7,"CardCode":"V001","CardName":"Acme Metals","DocumentStatus":"bost_Open","DocDate":"2026-08-14","DocTotal":1500},
			 "PurchaseDeliveryNotes/DocumentLines":{"DocEntry":1201,"LineNum":1,"ItemCode":"B","WarehouseCode":"WH01","Quantity":2.5,"LineStatus":"bost_Open"}}
		]}`))
	}))

	doc, lines, err := client.GetGRPODocument(context.Background(), 1201)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, 1201, doc.DocEntry)
	assert.Equal(t, "Acme Metals", doc.CardName)
	require.Len(t, lines, 2)
	assert.Equal(t, "A", lines[0].ItemCode)
	assert.Equal(t, 2.5, lines[1].Quantity)
}

func TestGetGRPODocument_EmptyResult(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"value":[]}`))
	}))

	doc, lines, err := client.GetGRPODocument(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, doc)
	assert.Empty(t, lines)
}

func TestListDocumentsBySeries_SendsParamList(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/b1s/v1/SQLQueries('GET_GRPO_DocEntry_By_Series')/List", r.URL.Path)
		assert.Equal(t, "odata.maxpagesize=0", r.Header.Get("Prefer"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "seriesID='7'", body["ParamList"])

		_, _ = w.Write([]byte(`{"value":[{"DocEntry":1201,"DocNum":5001,"CardName":"Acme Metals","DocStatus":"O"}]}`))
	}))

	docs, err := client.ListDocumentsBySeries(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, 1201, docs[0].DocEntry)
}

func TestGetItemClassification_MissingItem(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/b1s/v1/SQLQueries('ItemCode_Batch_Serial_Val')/List", r.URL.Path)
		_, _ = w.Write([]byte(`{"value":[]}`))
	}))

	info, err := client.GetItemClassification(context.Background(), "ZZZ")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestListBinLocations_FiltersByWarehouse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/b1s/v1/BinLocations", r.URL.Path)
		assert.Equal(t, "Warehouse eq 'WH01'", r.URL.Query().Get("$filter"))
		_, _ = w.Write([]byte(`{"value":[{"AbsEntry":12,"BinCode":"WH01-BIN-01","Warehouse":"WH01"}]}`))
	}))

	bins, err := client.ListBinLocations(context.Background(), "WH01")
	require.NoError(t, err)
	require.Len(t, bins, 1)
	assert.Equal(t, "WH01-BIN-01", bins[0].BinCode)
}

func TestCreateStockTransfer_PreservesRawResponse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/b1s/v1/StockTransfers", r.URL.Path)

		var transfer erp.StockTransfer
		require.NoError(t, json.NewDecoder(r.Body).Decode(&transfer))
		assert.Equal(t, "WH01", transfer.FromWarehouse)
		require.Len(t, transfer.StockTransferLines, 1)
		assert.Equal(t, erp.BaseTypeGRPO, transfer.StockTransferLines[0].BaseType)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"DocEntry":4321,"DocNum":9001,"DocDate":"2026-08-14"}`))
	}))

	result, err := client.CreateStockTransfer(context.Background(), erp.StockTransfer{
		DocDate:       "2026-08-14",
		FromWarehouse: "WH01",
		ToWarehouse:   "WH02",
		StockTransferLines: []erp.StockTransferLine{
			{LineNum: 0, ItemCode: "A", Quantity: 3, BaseType: erp.BaseTypeGRPO, BaseEntry: 1201},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4321, result.DocEntry)
	assert.Equal(t, 9001, result.DocNum)
	assert.JSONEq(t, `{"DocEntry":4321,"DocNum":9001,"DocDate":"2026-08-14"}`, string(result.Raw))
}

func TestCreateStockTransfer_Rejected(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":{"value":"Quantity falls below minimum"}}}`))
	}))

	result, err := client.CreateStockTransfer(context.Background(), erp.StockTransfer{})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrERPRejected)
	assert.Contains(t, err.Error(), "Quantity falls below minimum")
}

func TestListWarehouses_ServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.ListWarehouses(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrERPRejected)
}
