package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportVenuesXLSX(t *testing.T) {
	db := setupServicesTestDB(t)
	hop := createVenue(t, db, "The Musical Hop", "San Francisco", "CA", true)
	createVenue(t, db, "Park Square", "San Francisco", "CA", false)

	buf, err := ExportVenuesXLSX(db)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{VenueExportSheet}, f.GetSheetList())

	rows, err := f.GetRows(VenueExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, "Park Square", rows[1][1])
	assert.Equal(t, hop.ID, rows[2][0])
	assert.Equal(t, "Jazz", rows[2][6])
	assert.Equal(t, "Yes", rows[2][9])
}
