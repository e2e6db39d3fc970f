package token

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func Test_Generate_producesValidatableToken(t *testing.T) {
	tok, err := Generate(testSecret)
	require.NoError(t, err)
	assert.NoError(t, Validate(tok, testSecret))
}

func Test_Validate_rejectsWrongSecret(t *testing.T) {
	tok, err := Generate(testSecret)
	require.NoError(t, err)

	err = Validate(tok, []byte("not-the-right-secret-not-the-right-secret"))
	assert.Error(t, err)
}

func Test_Validate_rejectsGarbage(t *testing.T) {
	assert.Error(t, Validate("not.a.jwt", testSecret))
}

func Test_FromRequest_extractsBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	tok, err := FromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)
}

func Test_FromRequest_rejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := FromRequest(req)
	assert.Error(t, err)
}

func Test_FromRequest_rejectsNonBearerScheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	_, err := FromRequest(req)
	assert.Error(t, err)
}
