package dto

// PostTransferResponse reports a stock transfer accepted by the ERP.
type PostTransferResponse struct {
	Success     bool   `json:"success"`
	ERPDocEntry int    `json:"erp_doc_entry"`
	ERPDocNum   int    `json:"erp_doc_num"`
	Message     string `json:"message"`
}
