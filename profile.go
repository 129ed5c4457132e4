package skillgraph

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Profile is a user's career profile as submitted from the profile form.
type Profile struct {
	ID                string    `json:"id,omitempty"`
	FirstName         string    `json:"firstName" validate:"required,max=100"`
	LastName          string    `json:"lastName" validate:"required,max=100"`
	Skills            []string  `json:"skills" validate:"required,min=1,dive,required,max=100"`
	Position          string    `json:"position"`
	AcademicHistory   string    `json:"academicHistory"`
	CareerAspirations string    `json:"careerAspirations"`
	Preferences       string    `json:"preferences"`
	ResumeID          string    `json:"resumeId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Resume is the metadata of an uploaded resume file.
type Resume struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalName"`
	FilePath     string    `json:"filePath"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"createdAt"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Normalize trims whitespace from text fields and drops blank skills.
func (p *Profile) Normalize() {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Position = strings.TrimSpace(p.Position)

	skills := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	p.Skills = skills
}

// Validate checks required fields. The returned error wraps ErrInvalidProfile.
func (p *Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, describe(err))
	}
	return nil
}

// describe flattens validator errors into "field: tag" pairs.
func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
