package services

import (
	"bytes"
	"fmt"
	"net/http"

	"hostel-backend/utils"

	"github.com/xuri/excelize/v2"
)

// ExcelMIMEType is the content type of the exported workbook.
const ExcelMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportFileName is the attachment name of the exported workbook.
const ExportFileName = "hostelers.xlsx"

const exportSheet = "Hostelers Records"

// hostelerHeaders mirror the field order of HostelerDetails.
var hostelerHeaders = []string{"hostelerId", "phoneNumber", "name", "isPaid", "room", "price"}

// ExportService serializes the hosteler roster into a spreadsheet.
type ExportService struct {
	Hostelers *HostelerService
}

func NewExportService(hostelers *HostelerService) *ExportService {
	return &ExportService{Hostelers: hostelers}
}

// HostelersWorkbook builds an xlsx workbook with one header row and one row
// per hosteler. An empty roster is an error, not an empty sheet.
func (s *ExportService) HostelersWorkbook() (*bytes.Buffer, error) {
	details, err := s.Hostelers.AllDetails()
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, utils.NewAPIError(http.StatusBadRequest, "No hosteler records to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	headers := make([]interface{}, len(hostelerHeaders))
	for i, h := range hostelerHeaders {
		headers[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return nil, err
	}

	for i, d := range details {
		row := []interface{}{d.HostelerID, d.PhoneNumber, d.Name, d.IsPaid, d.Room, d.Price}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}
