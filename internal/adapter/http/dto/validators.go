package dto

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"tipcloud/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	safeStringRe    = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)
	walletAddressRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("safe_url", validateSafeURL)
		_ = v.RegisterValidation("wallet_address", validateWalletAddress)
		_ = v.RegisterValidation("memo", validateMemo)
	}
}

// IsSafeID reports whether s is usable as a DJ id.
func IsSafeID(s string) bool {
	return len(s) <= 64 && safeStringRe.MatchString(s)
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return IsSafeID(fl.Field().String())
}

// validateSafeURL accepts only http/https URLs.
func validateSafeURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true // optional field; use "required" tag to enforce presence
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validateWalletAddress(fl validator.FieldLevel) bool {
	return walletAddressRe.MatchString(fl.Field().String())
}

// validateMemo enforces the on-chain memo limit, which is in bytes.
func validateMemo(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= domain.MaxMemoBytes
}

// SanitizeStruct trims surrounding whitespace from every exported string
// field (including *string) of a struct pointer. Fields tagged
// `sanitize:"-"` are left as sent. Values are stored as typed; escaping is
// the renderer's job.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() || rt.Field(i).Tag.Get("sanitize") == "-" {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			if elem := f.Elem(); elem.Kind() == reflect.String {
				elem.SetString(strings.TrimSpace(elem.String()))
			}
		}
	}
}
