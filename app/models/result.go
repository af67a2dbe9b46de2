package models

import "time"

// Result is one declared outcome event for a student. It owns its items;
// the item set is written once at declaration time and never edited.
type Result struct {
	ID              string        `json:"id"`
	StudentID       string        `json:"student_id"`
	DeclarationDate time.Time     `json:"declaration_date"`
	CreatedAt       time.Time     `json:"created_at"`
	Student         *User         `json:"student,omitempty"`
	Items           []*ResultItem `json:"items,omitempty"`
}

// ResultItem is one subject's marks record within a Result.
type ResultItem struct {
	ID            string   `json:"id"`
	ResultID      string   `json:"result_id"`
	SubjectID     string   `json:"subject_id"`
	MarksObtained float64  `json:"marks_obtained"`
	TotalMarks    float64  `json:"total_marks"`
	Subject       *Subject `json:"subject,omitempty"`
}
