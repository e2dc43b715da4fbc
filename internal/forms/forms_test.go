package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, Fields{"name": "", "email": "", "source": "website"}, Defaults(Newsletter))
	assert.Equal(t, Fields{
		"name":         "",
		"email":        "",
		"roleInterest": "",
		"experience":   "",
		"portfolioUrl": "",
		"message":      "",
	}, Defaults(Application))
}

func TestSetUpdatesOnlyOneField(t *testing.T) {
	for _, form := range Forms() {
		for _, field := range FieldNames(form) {
			if !Editable(form, field) {
				continue
			}
			t.Run(string(form)+"/"+field, func(t *testing.T) {
				store := NewStore()
				for _, other := range FieldNames(form) {
					require.NoError(t, store.Set(form, other, "seed-"+other))
				}
				before := store.Fields(form)

				require.NoError(t, store.Set(form, field, "updated"))

				want := before.Clone()
				want[field] = "updated"
				assert.Equal(t, want, store.Fields(form))
			})
		}
	}
}

func TestSetLeavesOtherFormUntouched(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Set(Newsletter, FieldEmail, "a@b.com"))
	assert.Equal(t, Defaults(Application), store.Fields(Application))
}

func TestSetIgnoresFixedSource(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Set(Newsletter, FieldSource, "twitter"))
	assert.Equal(t, DefaultSource, store.Fields(Newsletter)[FieldSource])
	assert.False(t, Editable(Newsletter, FieldSource))
}

func TestSetRejectsUnknownField(t *testing.T) {
	store := NewStore()
	err := store.Set(Newsletter, FieldMessage, "hi")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.ErrorIs(t, store.Set(FormID("careers"), FieldName, "x"), ErrUnknownField)
}

func TestFieldsReturnsCopy(t *testing.T) {
	store := NewStore()
	fields := store.Fields(Newsletter)
	fields[FieldEmail] = "mutated@example.com"
	assert.Empty(t, store.Fields(Newsletter)[FieldEmail])
}

func TestResetRestoresDefaults(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Set(Application, FieldName, "Ada"))
	require.NoError(t, store.Set(Application, FieldMessage, "hello"))
	store.Reset(Application)
	assert.Equal(t, Defaults(Application), store.Fields(Application))
}

func TestMissing(t *testing.T) {
	cases := []struct {
		name   string
		form   FormID
		fields Fields
		want   []string
	}{
		{
			name:   "newsletter ok without name",
			form:   Newsletter,
			fields: Fields{"email": "a@b.com", "name": "", "source": "website"},
		},
		{
			name:   "newsletter needs email",
			form:   Newsletter,
			fields: Defaults(Newsletter),
			want:   []string{FieldEmail},
		},
		{
			name: "application missing message",
			form: Application,
			fields: Fields{
				"name":         "Ada",
				"email":        "ada@example.com",
				"roleInterest": "Backend",
			},
			want: []string{FieldMessage},
		},
		{
			name:   "application whitespace counts as empty",
			form:   Application,
			fields: Fields{"name": "  ", "email": "ada@example.com", "roleInterest": "\t", "message": "hi"},
			want:   []string{FieldName, FieldRoleInterest},
		},
		{
			name:   "application empty",
			form:   Application,
			fields: Defaults(Application),
			want:   []string{FieldName, FieldEmail, FieldRoleInterest, FieldMessage},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Missing(tc.form, tc.fields))
		})
	}
}
