package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Registration is one job seeker's submitted interest record. Rows are
// created once at signup and never updated or deleted by the service.
type Registration struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FullName         string         `gorm:"size:100;not null" json:"full_name"`
	Email            string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone            string         `gorm:"size:20;not null" json:"phone"`
	ResumeURL        *string        `gorm:"type:text" json:"resume_url,omitempty"`
	LinkedinProfile  *string        `gorm:"type:text" json:"linkedin_profile,omitempty"`
	YearsExperience  int            `gorm:"not null" json:"years_experience"`
	Industry         string         `gorm:"size:100;not null" json:"industry"`
	JobTitle         string         `gorm:"size:100;not null" json:"job_title"`
	Availability     string         `gorm:"size:100;not null" json:"availability"`
	EventPreferences datatypes.JSON `gorm:"not null" json:"event_preferences"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Preferences decodes the stored event-preference set.
func (r *Registration) Preferences() []string {
	var prefs []string
	if err := json.Unmarshal(r.EventPreferences, &prefs); err != nil {
		return nil
	}
	return prefs
}

// SetPreferences encodes the event-preference set for storage.
func (r *Registration) SetPreferences(prefs []string) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	r.EventPreferences = datatypes.JSON(raw)
	return nil
}

// Availability windows offered on the signup form.
var AvailabilityOptions = []string{
	"Immediately",
	"Within 2 weeks",
	"Within 1 month",
	"Within 3 months",
	"Currently employed, exploring options",
}

// Event types a job seeker can opt into.
var EventTypes = []string{
	"In-person job fairs",
	"Virtual career events",
	"Industry networking",
	"Resume workshops",
	"Interview preparation",
	"Career coaching sessions",
}

// SuggestedIndustries is shown as a picker on the form. The field itself is
// free-form, so values outside this list are accepted.
var SuggestedIndustries = []string{
	"Technology", "Healthcare", "Finance", "Education", "Manufacturing",
	"Retail", "Construction", "Transportation", "Government", "Non-profit", "Other",
}
