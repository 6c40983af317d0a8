package service

import (
	"strings"
	"testing"
	"time"

	"careerbridge.org/jobfairhub/internal/entity"
	"careerbridge.org/jobfairhub/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVEmptySetProducesNoFile(t *testing.T) {
	data, err := ExportCSV(nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNoData)
	assert.Nil(t, data)
}

func TestExportCSVHeaderHasElevenColumns(t *testing.T) {
	reg := makeRegistration(t, 3, "Technology", "Immediately", []string{"In-person job fairs"}, time.Now())

	data, err := ExportCSV([]entity.Registration{reg})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	header := strings.Split(lines[0], ",")
	assert.Len(t, header, 11)
	assert.Equal(t, `"Full Name"`, header[0])
	assert.Equal(t, `"Registration Date"`, header[10])
}

func TestExportCSVRowContents(t *testing.T) {
	resume := "https://example.com/resume.pdf"
	reg := entity.Registration{
		FullName:        "Jo Smith",
		Email:           "jo@x.com",
		Phone:           "5551234567",
		Industry:        "Technology",
		JobTitle:        "Dev",
		YearsExperience: 3,
		Availability:    "Immediately",
		ResumeURL:       &resume,
		CreatedAt:       time.Date(2024, 10, 17, 14, 30, 0, 0, time.UTC),
	}
	require.NoError(t, reg.SetPreferences([]string{"In-person job fairs", "Resume workshops"}))

	data, err := ExportCSV([]entity.Registration{reg})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	// Preferences flatten into one cell; absent LinkedIn renders empty;
	// every cell is quoted.
	assert.Equal(t,
		`"Jo Smith","jo@x.com","5551234567","Technology","Dev","3","Immediately","In-person job fairs; Resume workshops","https://example.com/resume.pdf","","2024-10-17"`,
		lines[1])
}

func TestExportCSVEscapesEmbeddedQuotes(t *testing.T) {
	reg := makeRegistration(t, 1, `Food "Service"`, "Immediately", []string{"In-person job fairs"}, time.Now())

	data, err := ExportCSV([]entity.Registration{reg})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"Food ""Service"""`)
}
