package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	UserID  uint    `json:"user_id" validate:"required,gt=0"`
	Email   *string `json:"email" validate:"omitempty,email"`
	URL     *string `json:"url" validate:"omitempty,url"`
	Release *string `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
}

func ptr(s string) *string {
	return &s
}

func TestValidator(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{name: "valid", input: sample{UserID: 3, Email: ptr("leia@alderaan.gov"), URL: ptr("https://swapi.dev/api/people/5/")}},
		{name: "missing user id", input: sample{}, wantErr: "user_id is required"},
		{name: "bad email", input: sample{UserID: 1, Email: ptr("leia")}, wantErr: "email must be a valid email address"},
		{name: "bad url", input: sample{UserID: 1, URL: ptr("alderaan")}, wantErr: "url must be a valid URL"},
		{name: "bad date", input: sample{UserID: 1, Release: ptr("25/05/1977")}, wantErr: "release_date must match 2006-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
