package validate

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"go-hris-cli/internal/shared/apperror"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator mengembalikan satu instance validator dengan nama field dari tag json
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			// Mengambil nama dari tag json (contoh: `json:"employee_id"`)
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		instance = v
	})
	return instance
}

// Struct validates a form struct and converts the first failure into an AppError.
func Struct(s any) error {
	if err := Validator().Struct(s); err != nil {
		return MapValidationError(err)
	}
	return nil
}

func formatFieldName(s string) string {
	// 1. Ganti underscore dengan spasi (employee_id -> employee id)
	s = strings.ReplaceAll(s, "_", " ")

	// 2. Pisahkan camelCase (employeeNumber -> employee Number)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	// 3. Ubah jadi Title Case (employee number -> Employee Number)
	caser := cases.Title(language.English)
	return caser.String(b.String())
}

func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		// Ambil error pertama
		e := errs[0]

		fieldName := e.Field()
		humanReadableField := formatFieldName(fieldName)

		switch e.Tag() {
		case "required":
			return apperror.RequiredField(humanReadableField)
		default:
			return apperror.InvalidField(humanReadableField)
		}
	}

	return apperror.ErrInvalidInput
}
