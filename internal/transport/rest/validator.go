package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

// maxBodyBytes caps request bodies; a cover letter is the largest payload.
const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("rest: register validation %q: %v", tag, err))
		}
	}
	mustRegister("is-round-type", func(fl validator.FieldLevel) bool {
		return domain.RoundType(fl.Field().String()).IsValid()
	})
	mustRegister("is-round-result", func(fl validator.FieldLevel) bool {
		return domain.RoundResult(fl.Field().String()).IsValid()
	})
	mustRegister("is-link-status", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || domain.LinkStatus(value).IsValid()
	})
	mustRegister("is-entity-type", func(fl validator.FieldLevel) bool {
		return domain.EntityType(fl.Field().String()).IsValid()
	})

	return v
}

// decodeAndValidate reads a JSON body into dst and validates it.
// An empty body decodes as an empty object.
func decodeAndValidate(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return validateStruct(dst)
}

func validateStruct(dst any) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate request: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fieldPath(fe), Message: fieldMessage(fe)})
	}
	return domain.NewValidationErrors(fields)
}

// fieldPath drops the top-level struct name from the namespace,
// so "createJobRequest.rounds[0].type" becomes "rounds[0].type".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s items/characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s items/characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "is-round-type":
		return "must be one of: screening, technical, assignment, hr, final, other"
	case "is-round-result":
		return "must be one of: scheduled, pending, passed, failed"
	case "is-link-status":
		return "must be one of: pending, approved, rejected, unlinked"
	case "is-entity-type":
		return "must be one of: business, recruiter_link, job, application"
	default:
		return fmt.Sprintf("invalid value (failed on %q)", fe.Tag())
	}
}

// pathID parses the {id} path value.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}
