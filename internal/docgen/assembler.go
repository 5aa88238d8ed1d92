package docgen

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/shawgichan/docgen-service/internal/docx"
	"github.com/shawgichan/docgen-service/internal/models"
	"github.com/shawgichan/docgen-service/internal/store"
)

// missingReferenceText is emitted for references that carry no citation.
const missingReferenceText = "Reference data missing for a source."

// GenerationError wraps any failure while building or persisting a document.
// Validation never produces one; by the time the assembler runs, the request
// is well-formed.
type GenerationError struct {
	ProjectID uuid.UUID
	Err       error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate document for project %s: %v", e.ProjectID, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Assembler turns validated generation requests into .docx files in the
// output directory.
type Assembler struct {
	files *store.LocalStore
	log   *slog.Logger
}

func NewAssembler(files *store.LocalStore, log *slog.Logger) *Assembler {
	return &Assembler{files: files, log: log}
}

// FileName computes the deterministic output file name for a project and
// title: spaces become underscores and the title part is capped at 30
// characters.
func FileName(projectID uuid.UUID, title string) string {
	slug := strings.ReplaceAll(title, " ", "_")
	if r := []rune(slug); len(r) > 30 {
		slug = string(r[:30])
	}
	return fmt.Sprintf("project_%s_%s.docx", projectID, slug)
}

// Assemble builds the document and writes it to the output directory,
// overwriting any file with the same name. The whole operation is
// synchronous; on any failure the error is logged with the project id and
// returned as a GenerationError, and no partial output is trusted.
func (a *Assembler) Assemble(req *models.GenerationRequest) (*models.GenerationResult, error) {
	doc := docx.New(docx.BodyStyle{
		FontFamily:  req.FormattingOptions.FontFamily,
		FontSizePt:  req.FormattingOptions.FontSize,
		LineSpacing: req.FormattingOptions.LineSpacing,
	})

	// Title block.
	doc.Title(req.ResearchTitle)
	doc.EmptyParagraph()
	doc.CenteredParagraph("By: " + req.StudentName)
	doc.CenteredParagraph("Specialization: " + req.Specialization)
	doc.CenteredParagraph("Institution: " + req.UniversityName)
	doc.PageBreak()

	// No table of contents: a dynamic ToC field would require a field-update
	// pass in Word, so the section is omitted entirely.

	for _, ch := range req.Chapters {
		doc.Heading(ch.Title)
		for _, line := range strings.Split(ch.Content, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				doc.Paragraph(line)
			}
		}
		doc.EmptyParagraph()
	}

	// Input order preserved; no sorting or deduplication.
	if len(req.References) > 0 {
		doc.Heading("References")
		for _, ref := range req.References {
			if ref.CitationAPA != "" {
				doc.HangingParagraph(ref.CitationAPA)
			} else {
				doc.ListParagraph(missingReferenceText)
			}
		}
	}

	data, err := doc.Bytes()
	if err != nil {
		return nil, a.fail(req.ProjectID, fmt.Errorf("encode document: %w", err))
	}

	name := FileName(req.ProjectID, req.ResearchTitle)
	path, err := a.files.Save(name, data)
	if err != nil {
		return nil, a.fail(req.ProjectID, err)
	}

	a.log.Info("document saved", "project_id", req.ProjectID, "file_path", path)
	return &models.GenerationResult{FileName: name, FilePath: path}, nil
}

func (a *Assembler) fail(projectID uuid.UUID, err error) error {
	a.log.Error("document generation failed", "project_id", projectID, "error", err)
	return &GenerationError{ProjectID: projectID, Err: err}
}
