package productcontroller

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/controllers/respond"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/services"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

type importResult struct {
	Created int
	Updated int
	Skipped int
}

// ImportProductsFromExcel reads the "file" upload, laid out like the
// export. Rows with a known ID update that product; the rest are created.
// Rows that fail to parse or validate are skipped.
func ImportProductsFromExcel(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			respond.Error(c, apperr.NewValidation("Excel file is required"))
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			respond.Error(c, apperr.Wrap(err, "Failed to open Excel file"))
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			respond.Error(c, apperr.NewValidation("Failed to parse Excel file"))
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			respond.Error(c, apperr.NewValidation("Excel file is empty or missing header row"))
			return
		}

		caller, _ := middleware.Principal(c)
		result, err := importSheet(c.Request.Context(), svc, caller, xlFile.Sheets[0])
		if err != nil {
			respond.Error(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": result.Created,
			"updated_count": result.Updated,
			"skipped_count": result.Skipped,
		})
	}
}

func importSheet(ctx context.Context, svc *services.ProductService, caller auth.Principal, sheet *xlsx.Sheet) (importResult, error) {
	var result importResult
	for i := 1; i < len(sheet.Rows); i++ {
		input, ok := parseRow(sheet.Rows[i])
		if !ok {
			result.Skipped++
			continue
		}

		if input.ID != "" {
			_, err := svc.Update(ctx, caller, input.ID, input)
			if err == nil {
				result.Updated++
				continue
			}
			if !isRowError(err) {
				return result, err
			}
			if apperr.KindOf(err) != apperr.NotFound {
				result.Skipped++
				continue
			}
		}

		if _, err := svc.Create(ctx, caller, input); err != nil {
			if !isRowError(err) {
				return result, err
			}
			result.Skipped++
			continue
		}
		result.Created++
	}
	return result, nil
}

// isRowError reports whether err concerns the row itself rather than the
// caller or the store.
func isRowError(err error) bool {
	switch apperr.KindOf(err) {
	case apperr.Validation, apperr.NotFound:
		return true
	}
	return false
}

func parseRow(row *xlsx.Row) (models.ProductInput, bool) {
	if row == nil {
		return models.ProductInput{}, false
	}
	get := func(index int) string {
		if index < len(row.Cells) {
			return strings.TrimSpace(row.Cells[index].String())
		}
		return ""
	}

	name := get(colName)
	category := get(colCategory)
	price, err := decimal.NewFromString(get(colPrice))
	if name == "" || category == "" || err != nil {
		return models.ProductInput{}, false
	}

	stock := 0
	if s := get(colStock); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return models.ProductInput{}, false
		}
		stock = n
	}

	description := get(colDescription)
	imageURL := get(colImageURL)
	sizes := splitList(get(colSizes))
	colors := splitList(get(colColors))
	return models.ProductInput{
		ID:          get(colID),
		Name:        &name,
		Description: &description,
		Price:       &price,
		Category:    &category,
		Sizes:       &sizes,
		Colors:      &colors,
		ImageURL:    &imageURL,
		Stock:       &stock,
	}, true
}

func splitList(s string) models.StringList {
	list := models.StringList{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}
