package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chirag-c499/result-menegment-system/app/database"
)

func TestQualifyEntriesSkipsIncompleteRows(t *testing.T) {
	entries := []DeclareEntry{
		{SubjectID: "s1", MarksObtained: "45", TotalMarks: "50"},
		{SubjectID: "s2", MarksObtained: "", TotalMarks: "50"},
		{SubjectID: "s3", MarksObtained: "30", TotalMarks: ""},
		{SubjectID: "s4", MarksObtained: "  ", TotalMarks: "100"},
	}

	qualified, err := qualifyEntries(entries)
	require.NoError(t, err)
	require.Len(t, qualified, 1)
	assert.Equal(t, database.ResultEntry{SubjectID: "s1", MarksObtained: 45, TotalMarks: 50}, qualified[0])
}

func TestQualifyEntriesParsesDecimals(t *testing.T) {
	qualified, err := qualifyEntries([]DeclareEntry{
		{SubjectID: "s1", MarksObtained: "87.5", TotalMarks: "100"},
	})
	require.NoError(t, err)
	require.Len(t, qualified, 1)
	assert.InDelta(t, 87.5, qualified[0].MarksObtained, 1e-9)
}

func TestQualifyEntriesRejectsNonNumericValues(t *testing.T) {
	_, err := qualifyEntries([]DeclareEntry{
		{SubjectID: "s1", MarksObtained: "forty", TotalMarks: "50"},
	})
	assert.Error(t, err)

	_, err = qualifyEntries([]DeclareEntry{
		{SubjectID: "s1", MarksObtained: "40", TotalMarks: "fifty"},
	})
	assert.Error(t, err)
}

func TestQualifyEntriesAllowsMarksAboveTotal(t *testing.T) {
	// Never validated historically; kept permissive.
	qualified, err := qualifyEntries([]DeclareEntry{
		{SubjectID: "s1", MarksObtained: "110", TotalMarks: "100"},
	})
	require.NoError(t, err)
	assert.Len(t, qualified, 1)
}

func TestQualifyEntriesEmptyInput(t *testing.T) {
	qualified, err := qualifyEntries(nil)
	require.NoError(t, err)
	assert.NotNil(t, qualified)
	assert.Empty(t, qualified)
}
