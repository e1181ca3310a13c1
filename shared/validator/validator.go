package validator

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"hotel/shared/base64"
	"hotel/shared/constant"
	"hotel/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const megabyte = 1 << 20

var validate *val.Validate

// uploadedFile reads a multipart upload or a base64 data URL, returning its content type and size.
func uploadedFile(field val.FieldLevel) (contentType string, size int, ok bool) {
	switch value := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return value.Header.Get(constant.RequestHeaderContentType), int(value.Size), true
	case string:
		return base64.GetContentType(value), len(value), true
	default:
		return "", 0, false
	}
}

// mimetypes=image/png image/jpeg
func validateMimetype(field val.FieldLevel) bool {
	contentType, _, ok := uploadedFile(field)
	if !ok || contentType == "" {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), strings.ToLower(contentType))
}

// maxfilesize=2 limits the upload to 2 MB.
func validateFileSize(field val.FieldLevel) bool {
	_, size, ok := uploadedFile(field)
	if !ok {
		return false
	}

	limit, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(size) <= limit*megabyte
}

// jsonName reports fields by the name clients send, so messages read "check_in is required".
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	rules := map[string]val.Func{
		"mimetypes":   validateMimetype,
		"maxfilesize": validateFileSize,
	}

	for tag, rule := range rules {
		if err := validate.RegisterValidation(tag, rule); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body into data and validates it. Malformed JSON is a decode failure,
// rule violations are a 400 with the first readable message.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.Decode("request body", err) //nolint:wrapcheck
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
