package web

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/aliskhannn/wordbook/internal/domain/entities"
)

// Field error messages.
const (
	msgRequired      = "This field is required."
	msgInvalidURL    = "Invalid URL."
	msgInvalidChoice = "Not a valid choice."
	msgInvalidValue  = "Invalid value."
)

// AddWordForm is the submission form of a new word entry.
type AddWordForm struct {
	Language    string `schema:"language" validate:"required,language"`
	WordEnglish string `schema:"word_english" validate:"required,notblank"`
	WordAlt     string `schema:"word_alt" validate:"required,notblank"`
	Definition  string `schema:"definition" validate:"required,notblank"`
	AudioURI    string `schema:"audio_uri" validate:"required,notblank,weburl"`
}

// Entry converts a validated form into a word entry. Values are kept verbatim.
func (f AddWordForm) Entry() entities.WordEntry {
	return entities.WordEntry{
		Language:    entities.Language(f.Language),
		WordEnglish: f.WordEnglish,
		WordAlt:     f.WordAlt,
		Definition:  f.Definition,
		AudioURI:    f.AudioURI,
	}
}

// FieldErrors maps a form field name to its error message.
type FieldErrors map[string]string

// formBinder decodes and validates submitted forms.
type formBinder struct {
	decoder  *schema.Decoder
	validate *validator.Validate
}

func newFormBinder() (*formBinder, error) {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true) // submit button and csrf token

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("schema"), ",")
		return name
	})

	rules := map[string]validator.Func{
		"language": func(fl validator.FieldLevel) bool {
			_, err := entities.ParseLanguage(fl.Field().String())
			return err == nil
		},
		"notblank": func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		},
		"weburl": func(fl validator.FieldLevel) bool {
			return isWebURL(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register %s validation: %w", tag, err)
		}
	}

	return &formBinder{decoder: decoder, validate: validate}, nil
}

// isWebURL accepts absolute scheme://host URLs whose host name has a top-level domain.
func isWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Opaque != "" {
		return false
	}

	host := u.Hostname()
	dot := strings.LastIndex(host, ".")
	if dot <= 0 || dot == len(host)-1 {
		return false
	}
	if strings.ContainsAny(host, " _") {
		return false
	}
	tld := host[dot+1:]
	for _, r := range tld {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}

	return true
}

// bindAddWord fills form from values and returns per-field validation errors.
func (b *formBinder) bindAddWord(values url.Values) (AddWordForm, FieldErrors, error) {
	var form AddWordForm
	if err := b.decoder.Decode(&form, values); err != nil {
		return form, nil, err
	}

	err := b.validate.Struct(form)
	if err == nil {
		return form, nil, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return form, nil, err
	}

	fieldErrs := make(FieldErrors, len(validationErrs))
	for _, fe := range validationErrs {
		if _, seen := fieldErrs[fe.Field()]; seen {
			continue
		}
		fieldErrs[fe.Field()] = messageFor(fe.Tag())
	}

	return form, fieldErrs, nil
}

func messageFor(tag string) string {
	switch tag {
	case "required", "notblank":
		return msgRequired
	case "weburl":
		return msgInvalidURL
	case "language":
		return msgInvalidChoice
	default:
		return msgInvalidValue
	}
}
