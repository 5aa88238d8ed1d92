package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Placeholder values applied when the author fields are omitted.
const (
	DefaultStudentName    = "A. Student"
	DefaultUniversityName = "University of Example"
	DefaultSpecialization = "Field of Study"
)

// Defaults for formatting options.
const (
	DefaultFontFamily  = "Times New Roman"
	DefaultFontSize    = 12
	DefaultLineSpacing = 1.5
)

// Chapter is one titled content section of the generated document.
type Chapter struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Reference is a single bibliography entry. The APA citation is optional;
// entries without one get a fixed placeholder line in the output.
type Reference struct {
	CitationAPA string `json:"citation_apa,omitempty"`
}

// FormattingOptions is the closed set of formatting knobs the assembler
// recognizes. Unknown keys in the incoming JSON object are ignored.
type FormattingOptions struct {
	FontFamily  string  `json:"font_family,omitempty"`
	FontSize    float64 `json:"font_size_main,omitempty"`
	LineSpacing float64 `json:"line_spacing,omitempty"`
}

// GenerationRequest is the JSON body for POST /generate-document.
type GenerationRequest struct {
	ProjectID         uuid.UUID         `json:"project_id"`
	ResearchTitle     string            `json:"research_title"`
	StudentName       string            `json:"student_name,omitempty"`
	UniversityName    string            `json:"university_name,omitempty"`
	Specialization    string            `json:"specialization,omitempty"`
	Chapters          []Chapter         `json:"chapters"`
	References        []Reference       `json:"references,omitempty"`
	FormattingOptions FormattingOptions `json:"formatting_options"`
}

// GenerationResponse is the JSON reply for POST /generate-document.
type GenerationResponse struct {
	ProjectID uuid.UUID `json:"project_id"`
	FileName  string    `json:"file_name"`
	Message   string    `json:"message"`
}

// GenerationResult describes a document the assembler has written to disk.
// It is returned once per request and not retained; the file is the durable
// artifact.
type GenerationResult struct {
	FileName string
	FilePath string
}

var (
	ErrMissingProjectID = errors.New("project_id is required")
	ErrMissingTitle     = errors.New("research_title is required")
	ErrMissingChapters  = errors.New("chapters is required")
)

// Validate checks the required fields. A malformed project_id already fails
// JSON decoding via uuid.UUID, so only absence is checked here. An empty
// chapters sequence is legal; a missing one is not.
func (r *GenerationRequest) Validate() error {
	if r.ProjectID == uuid.Nil {
		return ErrMissingProjectID
	}
	if r.ResearchTitle == "" {
		return ErrMissingTitle
	}
	if r.Chapters == nil {
		return ErrMissingChapters
	}
	for i, ch := range r.Chapters {
		if ch.Type == "" {
			return fmt.Errorf("chapter %d: type is required", i)
		}
		if ch.Title == "" {
			return fmt.Errorf("chapter %d: title is required", i)
		}
	}
	return nil
}

// ApplyDefaults fills in placeholder author fields and formatting defaults
// for anything the request omitted. Omitting formatting_options entirely is
// equivalent to supplying an empty object.
func (r *GenerationRequest) ApplyDefaults() {
	if r.StudentName == "" {
		r.StudentName = DefaultStudentName
	}
	if r.UniversityName == "" {
		r.UniversityName = DefaultUniversityName
	}
	if r.Specialization == "" {
		r.Specialization = DefaultSpecialization
	}
	if r.FormattingOptions.FontFamily == "" {
		r.FormattingOptions.FontFamily = DefaultFontFamily
	}
	if r.FormattingOptions.FontSize == 0 {
		r.FormattingOptions.FontSize = DefaultFontSize
	}
	if r.FormattingOptions.LineSpacing == 0 {
		r.FormattingOptions.LineSpacing = DefaultLineSpacing
	}
}
