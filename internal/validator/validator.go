package validator

import (
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"news-portal/internal/domain"
)

// Submission form messages, reported one at a time in this order.
const (
	MsgTitleRequired     = "Title is required"
	MsgBodyRequired      = "Body is required"
	MsgAuthorRequired    = "Select an existing author or enter a new author name"
	MsgPublisherRequired = "Select an existing publisher or enter a new publisher name"
)

var (
	validBlockTypes = []interface{}{domain.BlockTypeText, domain.BlockTypeImage, domain.BlockTypeVideo}
	validAlignments = []interface{}{domain.AlignmentLeft, domain.AlignmentCenter, domain.AlignmentRight, domain.AlignmentFull}
)

// FieldError is the first violation found in a form.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Violation describes an invalid field of one content block.
type Violation struct {
	Index  int    `json:"index"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validator provides validation methods for submissions and content.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSubmission checks a normalized form and returns a *FieldError for
// the first rule that fails.
func (v *Validator) ValidateSubmission(f *domain.SubmissionForm) error {
	checks := []struct {
		field string
		value interface{}
		rules []validation.Rule
	}{
		{"title", f.Title, []validation.Rule{
			validation.Required.Error(MsgTitleRequired),
		}},
		{"body", strings.TrimSpace(f.Body), []validation.Rule{
			validation.Required.Error(MsgBodyRequired),
		}},
		{"author", f.AuthorID + f.AuthorName, []validation.Rule{
			validation.Required.Error(MsgAuthorRequired),
		}},
		{"publisher", f.PublisherID + f.PublisherName, []validation.Rule{
			validation.Required.Error(MsgPublisherRequired),
		}},
	}

	for _, c := range checks {
		if err := validation.Validate(c.value, c.rules...); err != nil {
			return &FieldError{Field: c.field, Message: err.Error()}
		}
	}
	return nil
}

// ValidateBlock validates a single content block.
func (v *Validator) ValidateBlock(b *domain.Block) error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Type,
			validation.Required.Error("type_required"),
			validation.In(validBlockTypes...).Error("invalid_block_type"),
		),
		validation.Field(&b.Alignment,
			validation.In(validAlignments...).Error("invalid_alignment"),
		),
		validation.Field(&b.Content,
			validation.When(b.Type == domain.BlockTypeImage || b.Type == domain.BlockTypeVideo,
				validation.By(mediaURLRule("invalid_media_url")),
			),
		),
	)
}

// ValidateBlocks validates every block and collects the violations.
func (v *Validator) ValidateBlocks(blocks []domain.Block) []Violation {
	var violations []Violation
	for i := range blocks {
		violations = append(violations, ConvertValidationErrors(i, v.ValidateBlock(&blocks[i]))...)
	}
	return violations
}

// mediaURLRule accepts blob paths served by this application and absolute
// or schemeless web URLs. Empty values pass.
func mediaURLRule(message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok || s == "" || strings.HasPrefix(s, "/") {
			return nil
		}
		if err := is.URL.Validate(s); err != nil {
			return validation.NewError("invalid_url", message)
		}
		return nil
	}
}

// ConvertValidationErrors converts ozzo validation errors to block violations,
// ordered by field name.
func ConvertValidationErrors(index int, err error) []Violation {
	var violations []Violation

	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			violations = append(violations, Violation{
				Index:  index,
				Field:  field,
				Reason: fieldErr.Error(),
			})
		}
		sort.Slice(violations, func(i, j int) bool {
			return violations[i].Field < violations[j].Field
		})
	} else if err != nil {
		violations = append(violations, Violation{
			Index:  index,
			Field:  "unknown",
			Reason: fmt.Sprint(err),
		})
	}

	return violations
}
