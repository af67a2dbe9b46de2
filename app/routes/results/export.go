package results

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/Chirag-c499/result-menegment-system/app/models"
)

const exportSheet = "Results"

// ExportResultsAPI streams every declared result as an xlsx workbook,
// one row per result item. Admin only.
func (h *Handler) ExportResultsAPI(c *fiber.Ctx) error {
	results, err := h.Store.ListAllResults(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch results"})
	}

	file, err := buildWorkbook(results)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build export"})
	}
	defer file.Close()

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="results.xlsx"`)
	return file.Write(c.Response().BodyWriter())
}

func buildWorkbook(results []*models.Result) (*excelize.File, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName(file.GetSheetName(0), exportSheet); err != nil {
		return nil, err
	}

	headers := []interface{}{"Student", "Roll No", "Declared On", "Subject Code", "Subject", "Marks Obtained", "Total Marks"}
	if err := file.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return nil, err
	}

	rowIndex := 2
	for _, result := range results {
		studentName, rollNo := "", ""
		if result.Student != nil {
			studentName = result.Student.Name
			rollNo = result.Student.RollNo
		}
		declared := result.DeclarationDate.Format("2006-01-02")

		for _, item := range result.Items {
			subCode, subName := "", ""
			if item.Subject != nil {
				subCode = item.Subject.SubCode
				subName = item.Subject.SubName
			}

			row := []interface{}{studentName, rollNo, declared, subCode, subName, item.MarksObtained, item.TotalMarks}
			cell := fmt.Sprintf("A%d", rowIndex)
			if err := file.SetSheetRow(exportSheet, cell, &row); err != nil {
				return nil, err
			}
			rowIndex++
		}
	}
	return file, nil
}
