package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// VenueExportSheet is the sheet name of the venue export workbook
const VenueExportSheet = "Venues"

var venueExportHeaders = []string{
	"ID", "Name", "City", "State", "Address", "Phone", "Genres",
	"Website", "Facebook", "Seeking Talent", "Seeking Description",
}

// ExportVenuesXLSX writes every venue into a single-sheet workbook
func ExportVenuesXLSX(dbConn *gorm.DB) (*bytes.Buffer, error) {
	venues, err := AllVenues(dbConn)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", VenueExportSheet)

	for i, h := range venueExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(VenueExportSheet, cell, h)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastHeader, _ := excelize.CoordinatesToCellName(len(venueExportHeaders), 1)
	f.SetCellStyle(VenueExportSheet, "A1", lastHeader, headerStyle)

	for r, v := range venues {
		seeking := "No"
		if v.SeekingTalent {
			seeking = "Yes"
		}
		row := []interface{}{
			v.ID, v.Name, v.City, v.State, v.Address, v.Phone, strings.Join(v.Genres, ", "),
			v.WebsiteLink, v.FacebookLink, seeking, v.SeekingDescription,
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(VenueExportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write venue row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}
	return buf, nil
}
