package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Custom tags usable in `binding:"..."` struct tags.
const (
	NationalCodeTag = "national_code"
	MobileTag       = "ir_mobile"
)

var (
	nationalCodeRegex = regexp.MustCompile(`^\d{10}$`)
	mobileRegex       = regexp.MustCompile(`^09\d{9}$`)
)

var (
	translator ut.Translator
	setupOnce  sync.Once
	setupErr   error
)

// RegisterGinValidator installs the custom tags, JSON field naming and
// English messages on gin's default validator. Safe to call repeatedly.
func RegisterGinValidator() error {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		translator, setupErr = Setup(v)
	})
	return setupErr
}

// Setup configures v and returns the English translator bound to it.
func Setup(v *validator.Validate) (ut.Translator, error) {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(NationalCodeTag, patternValidator(nationalCodeRegex)); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation(MobileTag, patternValidator(mobileRegex)); err != nil {
		return nil, err
	}

	registerTranslation(v, trans, NationalCodeTag, "{0} must be exactly 10 digits")
	registerTranslation(v, trans, MobileTag, "{0} must be a mobile number like 09xxxxxxxxx")
	registerTranslation(v, trans, "required", "{0} is required", true)

	return trans, nil
}

func patternValidator(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func registerTranslation(v *validator.Validate, trans ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = v.RegisterTranslation(
		tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// IsNationalCode reports whether s is a 10 digit national code.
func IsNationalCode(s string) bool { return nationalCodeRegex.MatchString(s) }

// IsMobile reports whether s is an Iranian mobile number (09xxxxxxxxx).
func IsMobile(s string) bool { return mobileRegex.MatchString(s) }

// Messages flattens a binding error into client messages. Validation errors
// are translated field by field; anything else becomes one message.
func Messages(err error) []string {
	return MessagesWith(translator, err)
}

// MessagesWith is Messages with an explicit translator.
func MessagesWith(trans ut.Translator, err error) []string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			if trans != nil {
				msgs = append(msgs, fe.Translate(trans))
			} else {
				msgs = append(msgs, fe.Error())
			}
		}
		return msgs
	}
	return []string{"invalid request body: " + err.Error()}
}
