package service

import (
	"fmt"
	"strconv"
	"strings"

	"careerbridge.org/jobfairhub/internal/entity"
	"careerbridge.org/jobfairhub/pkg/apperror"
)

// csvHeaders is the fixed export column order. Exactly these 11 columns,
// regardless of data.
var csvHeaders = []string{
	"Full Name", "Email", "Phone", "Industry", "Job Title",
	"Years Experience", "Availability", "Event Preferences",
	"Resume URL", "LinkedIn", "Registration Date",
}

// ExportCSV serializes the record set for download. Every cell is wrapped in
// double quotes; embedded quotes are doubled. An empty set produces no file.
func ExportCSV(regs []entity.Registration) ([]byte, error) {
	if len(regs) == 0 {
		return nil, fmt.Errorf("there are no registrations to export: %w", apperror.ErrNoData)
	}

	var b strings.Builder
	writeRow(&b, csvHeaders)

	for _, reg := range regs {
		writeRow(&b, []string{
			reg.FullName,
			reg.Email,
			reg.Phone,
			reg.Industry,
			reg.JobTitle,
			strconv.Itoa(reg.YearsExperience),
			reg.Availability,
			strings.Join(reg.Preferences(), "; "),
			deref(reg.ResumeURL),
			deref(reg.LinkedinProfile),
			reg.CreatedAt.Format("2006-01-02"),
		})
	}

	return []byte(b.String()), nil
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
