package validatorx

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = New(nil)
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// New builds a validator that reports fields by their "form" tag (falling back
// to "json") and knows the given custom rules.
func New(rules map[string]gpvalidator.Func) *gpvalidator.Validate {
	val := gpvalidator.New()
	val.RegisterTagNameFunc(fieldName)
	for tag, fn := range rules {
		// only fails on an empty tag or nil func
		if err := val.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return val
}

// FailedFields returns the failing field names mapped to the tag that failed.
// Errors that are not validation errors yield nil.
func FailedFields(err error) map[string]string {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	failed := make(map[string]string, len(verrs))
	for _, e := range verrs {
		failed[e.Field()] = e.Tag()
	}
	return failed
}

func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}
