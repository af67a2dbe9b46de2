package results

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Chirag-c499/result-menegment-system/app/database"
	"github.com/Chirag-c499/result-menegment-system/app/models"
	"github.com/Chirag-c499/result-menegment-system/app/routes/auth"
)

var validate = validator.New()

type Handler struct {
	Guard *auth.Guard
	Store *database.Store
}

// DeclareEntry is one per-subject line of a declaration as submitted.
// Marks arrive as strings because the declare form posts every subject
// row, filled in or not.
type DeclareEntry struct {
	SubjectID     string `json:"subject_id"`
	MarksObtained string `json:"marks_obtained"`
	TotalMarks    string `json:"total_marks"`
}

type DeclareResultRequest struct {
	StudentID string         `json:"student_id" form:"student_id" validate:"required"`
	Entries   []DeclareEntry `json:"entries"`
}

// DeclareResultAPI creates one Result plus its qualifying items. Admin
// only. Accepts a JSON body or the declare form (marks_<subjectID> /
// total_<subjectID> fields, one pair per known subject).
func (h *Handler) DeclareResultAPI(c *fiber.Ctx) error {
	req, err := h.parseDeclareRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Student is required"})
	}

	entries, err := qualifyEntries(req.Entries)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.Store.DeclareResult(c.Context(), req.StudentID, entries)
	if err != nil {
		if errors.Is(err, database.ErrBadReference) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Unknown student or subject"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to declare result"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Result declared successfully!",
		"result":  result,
	})
}

func (h *Handler) parseDeclareRequest(c *fiber.Ctx) (*DeclareResultRequest, error) {
	req := &DeclareResultRequest{}

	if strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		if err := c.BodyParser(req); err != nil {
			return nil, err
		}
		return req, nil
	}

	// Declare form: one marks/total pair per subject row.
	req.StudentID = c.FormValue("student_id")
	subjects, err := h.Store.ListSubjects(c.Context())
	if err != nil {
		return nil, err
	}
	for _, subject := range subjects {
		req.Entries = append(req.Entries, DeclareEntry{
			SubjectID:     subject.ID,
			MarksObtained: c.FormValue("marks_" + subject.ID),
			TotalMarks:    c.FormValue("total_" + subject.ID),
		})
	}
	return req, nil
}

// qualifyEntries keeps the entries with both marks and total present.
// Rows left blank on the declare form are silently skipped, never an
// error; a non-empty value that does not parse as a number is rejected.
// Marks above the total are accepted, as they always were.
func qualifyEntries(entries []DeclareEntry) ([]database.ResultEntry, error) {
	qualified := []database.ResultEntry{}
	for _, entry := range entries {
		marks := strings.TrimSpace(entry.MarksObtained)
		total := strings.TrimSpace(entry.TotalMarks)
		if marks == "" || total == "" {
			continue
		}

		marksValue, err := strconv.ParseFloat(marks, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid marks value %q", marks)
		}
		totalValue, err := strconv.ParseFloat(total, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid total value %q", total)
		}

		qualified = append(qualified, database.ResultEntry{
			SubjectID:     entry.SubjectID,
			MarksObtained: marksValue,
			TotalMarks:    totalValue,
		})
	}
	return qualified, nil
}

// GetResultsAPI lists results: all of them for admins, own for students.
func (h *Handler) GetResultsAPI(c *fiber.Ctx) error {
	user := auth.UserFromCtx(c)

	var results []*models.Result
	var err error
	if user.IsAdmin() {
		results, err = h.Store.ListAllResults(c.Context())
	} else {
		results, err = h.Store.ListResultsForStudent(c.Context(), user.ID)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch results"})
	}

	return c.JSON(fiber.Map{
		"results": results,
		"count":   len(results),
	})
}

func (h *Handler) GetResultAPI(c *fiber.Ctx) error {
	result, err := h.Store.GetResultWithItems(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Result not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch result"})
	}

	user := auth.UserFromCtx(c)
	if !user.IsAdmin() && result.StudentID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
	return c.JSON(result)
}
