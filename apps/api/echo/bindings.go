package echoapi

import (
	"github.com/go-playground/validator/v10"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/grading"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/layout"
)

type (
	DocumentTypeResponse struct {
		Type        document.DocumentType `json:"type"`
		Title       string                `json:"title"`
		Card        bool                  `json:"card"`
		Orientation document.Orientation  `json:"orientation"`
		PageSize    document.Size         `json:"page_size"`
	}

	FieldsResponse struct {
		DocumentType document.DocumentType `json:"document_type"`
		Board        document.Board        `json:"board"`
		Fields       []document.FieldSpec  `json:"fields"`
	}

	ValidateResponse struct {
		Valid     bool   `json:"valid"`
		Reference string `json:"reference"`
	}

	LayoutResponse struct {
		Page       layout.Page           `json:"page"`
		Counts     map[string]int        `json:"counts"`
		Fields     []document.FieldValue `json:"fields,omitempty"`
		Assessment *layout.Assessment    `json:"assessment,omitempty"`
	}

	SheetsRequest struct {
		Requests []document.Request `json:"requests" validate:"required,min=1,max=500"`
	}

	ScaleResponse struct {
		Board document.Board `json:"board"`
		Bands []grading.Band `json:"bands"`
	}

	GradeResponse struct {
		Board      document.Board `json:"board"`
		Percentage float64        `json:"percentage"`
		Band       grading.Band   `json:"band"`
		Passed     bool           `json:"passed"`
	}

	CGPARequest struct {
		Points []float64 `json:"points" validate:"required,min=1,dive,gte=0,lte=10"`
	}

	CGPAResponse struct {
		CGPA float64 `json:"cgpa"`
	}

	WordsResponse struct {
		Number uint64 `json:"number"`
		Words  string `json:"words"`
		Rupees string `json:"rupees"`
		Figure string `json:"figure"`
	}
)

func (r SheetsRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}

func (r CGPARequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}
