package student

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alem-hub/progress-tracker/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREDENTIALS PARSING
// ══════════════════════════════════════════════════════════════════════════════

// Названия полей в том виде, в котором они попадают в сообщения пользователю.
const (
	FieldFirstName = "first name"
	FieldLastName  = "last name"
	FieldEmail     = "email"
)

var (
	credentialsPattern = regexp.MustCompile(`^(\S+) (.+) (\S+)$`)

	// Части адреса: буквы и цифры любого алфавита, "_", "-" и ".".
	emailPattern = regexp.MustCompile(`^[-._\p{L}\p{N}]+@[-._\p{L}\p{N}]+\.[-._\p{L}\p{N}]+$`)
)

// credentialFields - сырые поля строки; проверяются тегами validator.
type credentialFields struct {
	FirstName string `validate:"firstname"`
	LastName  string `validate:"lastname"`
	Email     string `validate:"trackeremail"`
}

// fieldNames сопоставляет поля структуры с пользовательскими названиями.
var fieldNames = map[string]string{
	"FirstName": FieldFirstName,
	"LastName":  FieldLastName,
	"Email":     FieldEmail,
}

var credentialsValidate *validator.Validate

func init() {
	credentialsValidate = validator.New()

	_ = credentialsValidate.RegisterValidation("firstname", func(fl validator.FieldLevel) bool {
		return isValidName(fl.Field().String(), false)
	})
	_ = credentialsValidate.RegisterValidation("lastname", func(fl validator.FieldLevel) bool {
		return isValidName(fl.Field().String(), true)
	})
	_ = credentialsValidate.RegisterValidation("trackeremail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
}

// Credentials - результат разбора строки учётных данных.
// Невалидное поле равно nil, остальные проверяются независимо.
type Credentials struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// FirstInvalid возвращает название первого невалидного поля
// (в порядке: имя, фамилия, email) или пустую строку.
func (c Credentials) FirstInvalid() string {
	switch {
	case c.FirstName == nil:
		return FieldFirstName
	case c.LastName == nil:
		return FieldLastName
	case c.Email == nil:
		return FieldEmail
	default:
		return ""
	}
}

// Validate возвращает InvalidFieldError для первого невалидного поля.
func (c Credentials) Validate() error {
	if field := c.FirstInvalid(); field != "" {
		return &shared.InvalidFieldError{Field: field}
	}
	return nil
}

// ParseCredentials разбирает строку вида "<имя> <фамилия...> <email>".
// Если строка не делится на три части, возвращает ErrNoCredentials.
// Функция чистая: не имеет побочных эффектов.
func ParseCredentials(line string) (Credentials, error) {
	m := credentialsPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Credentials{}, ErrNoCredentials
	}

	fields := credentialFields{FirstName: m[1], LastName: m[2], Email: m[3]}
	creds := Credentials{
		FirstName: &fields.FirstName,
		LastName:  &fields.LastName,
		Email:     &fields.Email,
	}

	err := credentialsValidate.Struct(fields)
	if err == nil {
		return creds, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Credentials{}, err
	}
	for _, fe := range verrs {
		switch fieldNames[fe.Field()] {
		case FieldFirstName:
			creds.FirstName = nil
		case FieldLastName:
			creds.LastName = nil
		case FieldEmail:
			creds.Email = nil
		}
	}

	return creds, nil
}

// isSpecial - дефис и апостроф.
func isSpecial(r rune) bool {
	return r == '-' || r == '\''
}

// isValidName проверяет имя или фамилию: от 2 символов из латинских букв,
// дефиса и апострофа (для фамилии ещё пробел); два спецсимвола подряд
// запрещены, как и спецсимвол в начале или в конце.
func isValidName(name string, allowSpace bool) bool {
	if len(name) < 2 {
		return false
	}

	var prev rune
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case isSpecial(r):
			if i > 0 && isSpecial(prev) {
				return false
			}
		case r == ' ' && allowSpace:
		default:
			return false
		}
		prev = r
	}

	return !isSpecial(rune(name[0])) && !isSpecial(rune(name[len(name)-1]))
}
