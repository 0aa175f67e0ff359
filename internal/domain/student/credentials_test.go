package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/progress-tracker/internal/domain/shared"
)

func TestParseCredentials_NoCredentials(t *testing.T) {
	for _, line := range []string{"", "   ", "John", "John Smith", "John  "} {
		_, err := ParseCredentials(line)
		assert.ErrorIs(t, err, ErrNoCredentials, "line %q", line)
	}
}

func TestParseCredentials_Valid(t *testing.T) {
	creds, err := ParseCredentials("Jean-Clause van Helsing jc@google.it")
	require.NoError(t, err)
	require.NotNil(t, creds.FirstName)
	require.NotNil(t, creds.LastName)
	require.NotNil(t, creds.Email)

	assert.Equal(t, "Jean-Clause", *creds.FirstName)
	assert.Equal(t, "van Helsing", *creds.LastName)
	assert.Equal(t, "jc@google.it", *creds.Email)
	assert.Empty(t, creds.FirstInvalid())
	assert.NoError(t, creds.Validate())
}

func TestParseCredentials_FieldValidation(t *testing.T) {
	tests := []struct {
		line    string
		invalid string
	}{
		{"John Smith jsmith@hotmail.com", ""},
		{"Robert Jemison Van de Graaff robertvdgraaff@mit.edu", ""},
		{"Ed Eden a1@a1.a1", ""},
		{"na'me s-u ii@ii.ii", ""},
		{"n'a me su aa-b'b ab@ab.ab", ""},
		{"J. Doe name@domain.com", FieldFirstName},
		{"陳 Smith name@domain.com", FieldFirstName},
		{"-John Smith name@domain.com", FieldFirstName},
		{"John' Smith name@domain.com", FieldFirstName},
		{"Jo--hn Smith name@domain.com", FieldFirstName},
		{"J Smith name@domain.com", FieldFirstName},
		{"John S name@domain.com", FieldLastName},
		{"John D. name@domain.com", FieldLastName},
		{"John -Smith name@domain.com", FieldLastName},
		{"John Smi'-th name@domain.com", FieldLastName},
		{"John Smith email", FieldEmail},
		{"John Smith email@emailxyz", FieldEmail},
		{"John Smith email@e@mail.xyz", FieldEmail},
		{"Jurgen Muller jürgen@münchen.de", ""},
		{"Ivan Petrov иван_1@почта.рф", ""},
		{"José Smith jose@x.io", FieldFirstName},
		{"John Smith john+tag@x.io", FieldEmail},
		{"John Smith john@x io", FieldLastName},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			creds, err := ParseCredentials(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.invalid, creds.FirstInvalid())
		})
	}
}

func TestParseCredentials_FieldsIndependent(t *testing.T) {
	creds, err := ParseCredentials("J D. bad-email")
	require.NoError(t, err)
	assert.Nil(t, creds.FirstName)
	assert.Nil(t, creds.LastName)
	assert.Nil(t, creds.Email)

	creds, err = ParseCredentials("John D. john@x.io")
	require.NoError(t, err)
	assert.NotNil(t, creds.FirstName)
	assert.Nil(t, creds.LastName)
	assert.NotNil(t, creds.Email)

	err = creds.Validate()
	var fieldErr *shared.InvalidFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldLastName, fieldErr.Field)
	assert.True(t, shared.IsValidation(err))
}
