package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

// ExportProductsToExcel streams the full catalog as an .xlsx download.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "NameEN", "NameAR", "Price", "SalePrice", "InStock",
			"Featured", "Category", "Image", "Tags", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID.String())
			row.AddCell().SetValue(p.EName)
			row.AddCell().SetValue(p.ARName)
			row.AddCell().SetValue(p.Price)
			if p.SalePrice != nil {
				row.AddCell().SetValue(*p.SalePrice)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.InStock)
			row.AddCell().SetValue(p.IsFeatured)
			if p.Category != nil {
				row.AddCell().SetValue(p.Category.EName)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(strings.Join(p.Tags, ","))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
