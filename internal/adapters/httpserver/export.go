package httpserver

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// apiProductExport streams the whole catalog as an XLSX workbook, one
// row per size with its derived stock level.
func (s *Server) apiProductExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	list, err := s.products.List(r.Context(), 0)
	if err != nil {
		s.fail(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	header := []any{"product_id", "product_name", "color", "size", "price", "stock", "stock_level"}
	_ = f.SetSheetRow(sheet, "A1", &header)
	row := 2
	for _, p := range list {
		for _, item := range p.Items {
			for _, sz := range item.Sizes {
				cell := "A" + strconv.Itoa(row)
				vals := []any{p.ProductID, p.ProductName, item.Color, sz.Size, sz.Price, sz.Stock.Stock, string(sz.Stock.Level)}
				_ = f.SetSheetRow(sheet, cell, &vals)
				row++
			}
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=catalog.xlsx")
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("xlsx export")
	}
}
