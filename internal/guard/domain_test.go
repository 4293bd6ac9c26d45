package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func domainRequest(host, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Host = host
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSecondaryDomainBlocksPrimaryRoutes(t *testing.T) {
	mw := SecondaryDomainOnly("donate.example.org", []string{"/campaigns"})

	c, _ := domainRequest("donate.example.org", "/dashboard")
	err := mw(okHandler)(c)

	httpErr, ok := err.(*echo.HTTPError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
		assert.Equal(t, "Route not found on this domain", httpErr.Message)
	}
}

func TestSecondaryDomainAllowsItsOwnRoutes(t *testing.T) {
	mw := SecondaryDomainOnly("donate.example.org", []string{"/campaigns"})

	c, rec := domainRequest("donate.example.org", "/campaigns/abc")
	assert.NoError(t, mw(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecondaryDomainIgnoresPrimaryHost(t *testing.T) {
	mw := SecondaryDomainOnly("donate.example.org", []string{"/campaigns"})

	c, rec := domainRequest("app.example.org", "/dashboard")
	assert.NoError(t, mw(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// Host matching is exact: port or subdomain variants of the secondary host
// fall through to the primary app.
func TestSecondaryDomainExactHostMatchOnly(t *testing.T) {
	mw := SecondaryDomainOnly("donate.example.org", []string{"/campaigns"})

	for _, host := range []string{"donate.example.org:8080", "www.donate.example.org"} {
		c, rec := domainRequest(host, "/dashboard")
		assert.NoError(t, mw(okHandler)(c), host)
		assert.Equal(t, http.StatusOK, rec.Code, host)
	}
}

func TestSecondaryDomainDisabledWhenUnset(t *testing.T) {
	mw := SecondaryDomainOnly("", []string{"/campaigns"})

	c, rec := domainRequest("donate.example.org", "/dashboard")
	assert.NoError(t, mw(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
