package productcontroller

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/controllers/respond"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/services"
	"github.com/tealeg/xlsx"
)

// sheetHeaders is the column layout shared by export and import.
var sheetHeaders = []string{
	"ID", "Name", "Description", "Price", "Category",
	"Sizes", "Colors", "ImageURL", "Stock", "CreatedAt",
}

const (
	colID = iota
	colName
	colDescription
	colPrice
	colCategory
	colSizes
	colColors
	colImageURL
	colStock
	colCreatedAt
)

// ExportProductsToExcel streams the whole catalog as an xlsx workbook.
func ExportProductsToExcel(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), models.ProductFilter{})
		if err != nil {
			respond.Error(c, err)
			return
		}

		file, err := buildWorkbook(products)
		if err != nil {
			respond.Error(c, err)
			return
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			log.Printf("❌ Failed to write Excel file: %v", err)
		}
	}
}

func buildWorkbook(products []models.Product) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, err
	}

	headerRow := sheet.AddRow()
	for _, h := range sheetHeaders {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Description)
		row.AddCell().SetString(p.Price.StringFixed(2))
		row.AddCell().SetString(p.Category)
		row.AddCell().SetString(strings.Join(p.Sizes, ","))
		row.AddCell().SetString(strings.Join(p.Colors, ","))
		row.AddCell().SetString(p.ImageURL)
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return file, nil
}
