package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Years tolerates non-numeric JSON input by coercing it to zero, matching the
// signup form's handling of garbage in the experience field. Range checks
// still apply after coercion.
type Years int

func (y *Years) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		f, ferr := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if ferr != nil {
			*y = 0
			return nil
		}
		n = int(f)
	}
	*y = Years(n)
	return nil
}

func (y Years) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(y))
}

// RegisterRequest is the body for POST /api/registrations.
type RegisterRequest struct {
	FullName         string   `json:"full_name" validate:"required,min=2,max=100"`
	Email            string   `json:"email" validate:"required,email,max=255"`
	Phone            string   `json:"phone" validate:"required,min=10,max=20"`
	ResumeURL        string   `json:"resume_url" validate:"omitempty,url"`
	LinkedinProfile  string   `json:"linkedin_profile" validate:"omitempty,url"`
	YearsExperience  Years    `json:"years_experience" validate:"min=0,max=50"`
	Industry         string   `json:"industry" validate:"required,min=1,max=100"`
	JobTitle         string   `json:"job_title" validate:"required,min=2,max=100"`
	Availability     string   `json:"availability" validate:"required"`
	EventPreferences []string `json:"event_preferences" validate:"required,min=1"`
}

// Normalize trims whitespace the way the form does before validation runs.
func (r *RegisterRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.ResumeURL = strings.TrimSpace(r.ResumeURL)
	r.LinkedinProfile = strings.TrimSpace(r.LinkedinProfile)
	r.Industry = strings.TrimSpace(r.Industry)
	r.JobTitle = strings.TrimSpace(r.JobTitle)
}

type RegisterResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
