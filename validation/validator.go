package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// MaxPasswordBytes bcrypt 只接受 72 字节以内的明文
	MaxPasswordBytes = 72

	// MaxAmount 金额列为 decimal(12,2)
	MaxAmount = 10000000000
)

// Error 校验失败，仅携带第一个出错字段的信息
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 字段路径使用 json 名，查询参数结构体回退到 form 名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
	_ = v.RegisterValidation("cents", func(fl validator.FieldLevel) bool {
		return hasCents(fl.Field().Float())
	})
	return v
}

// hasCents 有限值且小数不超过两位
func hasCents(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return decimal.NewFromFloat(f).Exponent() >= -2
}

// messages 字段规则对应的提示文案，key 为 "字段.规则"
var messages = map[string]string{
	"username.min":       "Username must be at least 3 characters",
	"username.max":       "Username must be at most 20 characters",
	"email.email":        "Invalid email address",
	"password.min":       "Password must be at least 6 characters",
	"password.max":       "Password must be at most 20 characters",
	"password.bcryptlen": "Password must be at most 72 bytes",
	"role.oneof":         "Role must be either user or admin",
	"userId.len":         "User ID must be exactly 24 characters long",
	"categoryId.len":     "Category ID must be exactly 24 characters long",
	"expenseId.len":      "Expense ID must be exactly 24 characters long",
	"name.min":           "Category name must be at least 3 characters",
	"name.max":           "Category name must be at most 255 characters",
	"type.oneof":         "Type must be either income or expense",
	"amount.gt":          "Amount must be a positive number",
	"amount.lt":          "Amount must be less than 10000000000",
	"amount.cents":       "Amount must have at most 2 decimal places",
	"colorCode.max":      "Color code must be at most 20 characters",
	"sortBy.oneof":       "sortBy must be one of date, amount, createdAt",
}

// check 执行结构体规则，返回第一个失败字段
func check(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &Error{Message: err.Error()}
	}
	fe := verrs[0]
	return &Error{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return fe.Field() + " is required"
	}
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fe.Field() + " is invalid"
}

// BindError 将请求体解析错误转换为校验错误，空请求体视为 {}
func BindError(err error) error {
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &Error{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be a %s", typeErr.Field, kindName(typeErr.Type)),
		}
	}
	var timeErr *time.ParseError
	if errors.As(err, &timeErr) {
		return &Error{Field: "date", Message: "date must be a valid date"}
	}
	return &Error{Message: "Invalid request body"}
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "number"
	case reflect.Bool:
		return "boolean"
	default:
		return "valid value"
	}
}

func trimLower(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*s))
	return &v
}

func lower(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(*s)
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
