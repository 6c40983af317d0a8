package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors converts binding failures into a map of form field -> message,
// so the client can render rejection messages inline per field.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			fields[jsonFieldName(fieldError.Field())] = getFieldErrorMessage(fieldError)
		}
		return fields
	}
	fields["_"] = err.Error()
	return fields
}

func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := displayName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please enter a valid email address"
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min":
		if fe.Type().Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		if fe.Type().Kind().String() == "slice" {
			return fmt.Sprintf("%s must have at least %s entry", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Type().Kind().String() == "string" {
			return fmt.Sprintf("%s must be less than %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func displayName(field string) string {
	fieldNames := map[string]string{
		"FullName":         "Full name",
		"Email":            "Email",
		"Phone":            "Phone number",
		"ResumeURL":        "Resume URL",
		"LinkedinProfile":  "LinkedIn profile",
		"YearsExperience":  "Years of experience",
		"Industry":         "Industry",
		"JobTitle":         "Job title",
		"Availability":     "Availability",
		"EventPreferences": "Event preferences",
		"Password":         "Password",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}

func jsonFieldName(field string) string {
	names := map[string]string{
		"FullName":         "full_name",
		"Email":            "email",
		"Phone":            "phone",
		"ResumeURL":        "resume_url",
		"LinkedinProfile":  "linkedin_profile",
		"YearsExperience":  "years_experience",
		"Industry":         "industry",
		"JobTitle":         "job_title",
		"Availability":     "availability",
		"EventPreferences": "event_preferences",
		"Password":         "password",
	}
	if name, ok := names[field]; ok {
		return name
	}
	return strings.ToLower(field)
}
