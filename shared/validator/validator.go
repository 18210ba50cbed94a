package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"cleanrate/shared/constant"
	"cleanrate/shared/failure"

	"github.com/gabriel-vasile/mimetype"
	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// DetectContentType sniffs the first bytes of an uploaded file.
func DetectContentType(file multipart.File) (string, error) {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to detect content type: %w", err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return constant.Empty, fmt.Errorf("failed to rewind file: %w", err)
	}

	// mimetype reports parameters for some types, e.g. "text/plain; charset=utf-8"
	contentType, _, _ := strings.Cut(mtype.String(), ";")

	return contentType, nil
}

func registerMimetypeValidation(field val.FieldLevel) bool {
	header, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	file, err := header.Open()
	if err != nil {
		return false
	}
	defer file.Close()

	contentType, err := DetectContentType(file)
	if err != nil {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	header, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(header.Size) <= maxSizeMB*constant.BytesInMegabyte
}

const (
	minRating = 1
	maxRating = 10
)

func registerRatingValidation(field val.FieldLevel) bool {
	switch field.Field().Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rating := field.Field().Int()

		return rating >= minRating && rating <= maxRating
	default:
		return false
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	if err := validate.RegisterValidation("mimetypes", registerMimetypeValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("maxfilesize", registerFileSizeValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("rating", registerRatingValidation); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
