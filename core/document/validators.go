package document

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core"
)

var (
	docTypeTag  = "doctype"
	docTypeText = "unknown document type"

	boardTag  = "board"
	boardText = "board must be one of CBSE, ICSE or STATE"

	notBlankTag  = "notblank"
	notBlankText = "this field cannot be blank"
)

// InitValidators registers the document validation tags.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(docTypeTag, docTypeValidation)
	core.RegisterCustomTranslation(validate, translator, docTypeTag, docTypeText)

	_ = validate.RegisterValidation(boardTag, boardValidation)
	core.RegisterCustomTranslation(validate, translator, boardTag, boardText)

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	core.RegisterCustomTranslation(validate, translator, notBlankTag, notBlankText)
}

// CheckSchool validates the letterhead with struct tags.
func CheckSchool(validate *validator.Validate, info SchoolInfo) error {
	return validate.Struct(info)
}

// Validate checks the request envelope with struct tags. Record fields are
// checked by the package level Validate.
func (r Request) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}

// Custom Validators

func docTypeValidation(fl validator.FieldLevel) bool {
	dt, ok := fl.Field().Interface().(DocumentType)
	return ok && dt.Valid()
}

func boardValidation(fl validator.FieldLevel) bool {
	b, ok := fl.Field().Interface().(Board)
	return ok && validBoard(b)
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}
