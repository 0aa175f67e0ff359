// Package student содержит доменную модель студента трекера прогресса.
//
// Пакет определяет:
//
//   - Сущность Student с векторами очков и сдач по четырём курсам
//   - Value Objects: ID, Vector, Key
//   - Разбор ввода: ParseCredentials и ParsePoints
//   - Интерфейс репозитория Repository
//
// # Идентификаторы
//
// ID вычисляется из email функцией DeriveID и стабилен между запусками:
//
//	id := DeriveID("jane@example.com")
//
// # Разбор ввода
//
// Строка учётных данных разбирается на три поля, каждое проверяется
// независимо. Невалидное поле становится nil:
//
//	creds, err := ParseCredentials("Jane Doe jane@example.com")
//	if errors.Is(err, ErrNoCredentials) {
//	    // строка не делится на имя, фамилию и email
//	}
//	if field := creds.FirstInvalid(); field != "" {
//	    // сообщаем пользователю название поля
//	}
//
// Строка очков содержит ID и четыре неотрицательные дельты:
//
//	entry, err := ParsePoints("10001 5 0 3 0")
//	err = student.AddPoints(entry.Delta)
package student
