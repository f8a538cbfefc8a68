package routing

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
)

// Request bodies use pointer fields so that a missing field can be told
// apart from an empty one. Empty strings are allowed.

type propertyRequest struct {
	Title   *string `json:"title" validate:"required"`
	Country *string `json:"country" validate:"required"`
	City    *string `json:"city" validate:"required"`
}

type reviewRequest struct {
	Title  *string `json:"title" validate:"required"`
	Body   *string `json:"body" validate:"required"`
	Rating *int    `json:"rating" validate:"required"`
}

type commentRequest struct {
	Body *string `json:"body" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode reads a JSON body into dst and validates it. Every error it
// returns is meant to be reported as 422.
func decode(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

// fromForm fills dst from the posted form values of a page request.
// Fields absent from the form are left nil and caught by validation.
func fromForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	switch req := dst.(type) {
	case *propertyRequest:
		req.Title = formValue(r, "title")
		req.Country = formValue(r, "country")
		req.City = formValue(r, "city")
	case *reviewRequest:
		req.Title = formValue(r, "title")
		req.Body = formValue(r, "body")
		if raw := formValue(r, "rating"); raw != nil {
			rating, err := strconv.Atoi(*raw)
			if err != nil {
				return fmt.Errorf("rating: %w", err)
			}
			req.Rating = &rating
		}
	case *commentRequest:
		req.Body = formValue(r, "body")
	default:
		return fmt.Errorf("unsupported form type %T", dst)
	}
	return validate.Struct(dst)
}

func formValue(r *http.Request, key string) *string {
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// describe renders a decode error as a client facing detail.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+": field required")
		}
		return strings.Join(fields, "; ")
	}
	var terr *json.UnmarshalTypeError
	if errors.As(err, &terr) {
		return fmt.Sprintf("%s: expected %s", terr.Field, terr.Type)
	}
	return err.Error()
}
