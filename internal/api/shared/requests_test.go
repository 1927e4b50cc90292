package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type target struct {
		Name *string `json:"name"`
		Age  int     `json:"age"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
		check   func(t *testing.T, v target)
	}{
		{
			name: "valid json",
			body: `{"name": "test", "age": 30}`,
			check: func(t *testing.T, v target) {
				require.NotNil(t, v.Name)
				assert.Equal(t, "test", *v.Name)
				assert.Equal(t, 30, v.Age)
			},
		},
		{
			name:    "invalid json",
			body:    `{"name": "test",}`,
			wantErr: true,
		},
		{
			name: "empty body",
			body: "",
			check: func(t *testing.T, v target) {
				assert.Nil(t, v.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var v target
			err := DecodeJSON(req, &v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, v)
		})
	}
}

type selfValidating struct{ ok bool }

func (s selfValidating) Validate() error {
	if !s.ok {
		return errors.New("not ok")
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	type credentials struct {
		Username string `validate:"required"`
	}

	assert.NoError(t, ValidateRequest(credentials{Username: "ana"}))
	assert.Error(t, ValidateRequest(credentials{}))

	assert.NoError(t, ValidateRequest(selfValidating{ok: true}))
	assert.Error(t, ValidateRequest(selfValidating{}))
}
