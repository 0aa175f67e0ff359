// Package student содержит доменную модель студента трекера.
// Это ядро бизнес-логики - здесь нет инфраструктурных зависимостей.
package student

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/alem-hub/progress-tracker/internal/domain/course"
	"github.com/alem-hub/progress-tracker/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// MaxID - верхняя граница (не включительно) для идентификаторов студентов.
const MaxID = 1_000_000

// MaxPoints - предел очков и сдач в одном слоте курса. Совпадает с
// шириной столбца INTEGER в PostgreSQL.
const MaxPoints = math.MaxInt32

// ID - числовой идентификатор студента, вычисляемый из email.
type ID int

// String возвращает десятичное представление ID.
func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// DeriveID вычисляет стабильный ID из email: BLAKE2b-256, первые 8 байт
// (big-endian) по модулю MaxID. Коллизии разных email не обрабатываются.
func DeriveID(email string) ID {
	sum := blake2b.Sum256([]byte(email))
	return ID(binary.BigEndian.Uint64(sum[:8]) % MaxID)
}

// Vector - по одному значению на каждый слот курса из каталога.
type Vector [course.Count]int

// Add складывает векторы поэлементно.
func (v Vector) Add(other Vector) Vector {
	for i := range v {
		v[i] += other[i]
	}
	return v
}

// Submissions превращает дельты очков в счётчики сдач: 1 для ненулевого слота.
func (v Vector) Submissions() Vector {
	var out Vector
	for i, delta := range v {
		if delta != 0 {
			out[i] = 1
		}
	}
	return out
}

// IsZero возвращает true, если все слоты равны нулю.
func (v Vector) IsZero() bool {
	return v == Vector{}
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrStudentNotFound - студент не найден.
	ErrStudentNotFound = shared.ErrStudentNotFound

	// ErrEmailTaken - студент с таким email (ID) уже существует.
	ErrEmailTaken = shared.ErrEmailTaken

	// ErrNoCredentials - строка не разбивается на имя, фамилию и email.
	ErrNoCredentials = shared.ErrNoCredentials

	// ErrMalformedPoints - строка с очками имеет неверный формат.
	ErrMalformedPoints = shared.ErrMalformedPoints

	// ErrPointsOverflow - после сложения слот превысил бы MaxPoints.
	ErrPointsOverflow = shared.ErrPointsOverflow
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student - запись о студенте и его прогрессе по курсам.
type Student struct {
	// ID - идентификатор, вычисленный из email.
	ID ID

	FirstName string
	LastName  string
	Email     string

	// Points - сумма очков по каждому курсу.
	Points Vector

	// Submissions - количество сдач с ненулевыми очками по каждому курсу.
	Submissions Vector

	// CreatedAt - время добавления студента.
	CreatedAt time.Time
}

// NewStudent создаёт студента из полностью валидных учётных данных.
// Очки и сдачи инициализируются нулями.
func NewStudent(creds Credentials) (*Student, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	return &Student{
		ID:        DeriveID(*creds.Email),
		FirstName: *creds.FirstName,
		LastName:  *creds.LastName,
		Email:     *creds.Email,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// AddPoints прибавляет дельты к очкам и засчитывает по одной сдаче
// для каждого курса с ненулевой дельтой. Никогда не сбрасывает значения.
// Если хотя бы один слот превысил бы MaxPoints, студент не изменяется
// и возвращается ErrPointsOverflow.
func (s *Student) AddPoints(delta Vector) error {
	submissions := delta.Submissions()
	for i := range delta {
		if delta[i] > MaxPoints-s.Points[i] || submissions[i] > MaxPoints-s.Submissions[i] {
			return ErrPointsOverflow
		}
	}

	s.Points = s.Points.Add(delta)
	s.Submissions = s.Submissions.Add(submissions)
	return nil
}

// FullName возвращает имя и фамилию через пробел.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// IsEnrolled возвращает true, если у студента есть сдачи по курсу.
func (s *Student) IsEnrolled(courseIndex int) bool {
	return s.Submissions[courseIndex] > 0
}

// String возвращает строковое представление студента для логирования.
func (s *Student) String() string {
	return fmt.Sprintf("Student{ID: %d, Email: %s, Points: %v}", s.ID, s.Email, s.Points)
}

// Clone создаёт копию студента.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}

	clone := *s
	return &clone
}
