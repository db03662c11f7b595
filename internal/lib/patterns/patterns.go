// Package patterns содержит форматные правила полей регистрации.
//
// Каждое правило — скомпилированное регулярное выражение и сообщение об ошибке,
// которое уходит клиенту с привязкой к конкретному полю. Правила применяются
// только к полям регистрации пользователя: username, email и password.
package patterns

import (
	"regexp"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
)

// Pattern описывает форматное правило поля: регулярное выражение и сообщение для клиента.
type Pattern struct {
	Field   string
	Regexp  *regexp.Regexp
	Message string
}

// Username: 3-20 символов из букв, цифр, пробелов и набора @#$%^&+=.
var Username = Pattern{
	Field:   "username",
	Regexp:  regexp.MustCompile(`^[A-Za-z0-9@#$%^&+=\s]{3,20}$`),
	Message: "Invalid username. 3-20 chars, letters, nums, symbols.",
}

// Email: локальная часть и домен со строчными метками.
var Email = Pattern{
	Field:   "email",
	Regexp:  regexp.MustCompile(`^[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$`),
	Message: "Invalid email. Use a valid address, e.g., yourname@example.com.",
}

// Password: минимум 8 символов из букв, цифр и набора @#$%^&+=.
var Password = Pattern{
	Field:   "password",
	Regexp:  regexp.MustCompile(`^[A-Za-z0-9@#$%^&+=]{8,}$`),
	Message: "Invalid password. Min 8 chars, letters, nums, symbols.",
}

// Validate проверяет значение по правилу и возвращает ошибку валидации,
// привязанную к полю правила, либо nil.
func (p Pattern) Validate(value string) error {
	if !p.Regexp.MatchString(value) {
		return apperr.Validation(p.Field, p.Message)
	}
	return nil
}
