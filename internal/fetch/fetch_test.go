package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePostingHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Acme Careers</title>
	<meta property="og:site_name" content="Acme Corp">
</head>
<body>
	<nav>Home | Jobs | About</nav>
	<h1>Senior Backend Engineer</h1>
	<div class="job-description">
		<p>We are looking for a backend engineer with Go and PostgreSQL experience.</p>
		<p>You must have 5+ years of experience building services.</p>
	</div>
	<footer>Copyright Acme</footer>
</body>
</html>`

func TestPosting_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(samplePostingHTML))
	}))
	defer server.Close()

	result, err := Posting(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, server.URL, result.URL)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Senior Backend Engineer")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestPosting_InvalidURL(t *testing.T) {
	_, err := Posting(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	fetchErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestPosting_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := Posting(context.Background(), server.URL, nil)
	require.Error(t, err)

	// The result still carries the status for diagnostics.
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestPosting_CustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "en", r.Header.Get("Accept-Language"))
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	opts := &Options{
		Timeout:   DefaultTimeout,
		UserAgent: "custom-agent",
		Headers:   map[string]string{"Accept-Language": "en"},
	}
	_, err := Posting(context.Background(), server.URL, opts)
	require.NoError(t, err)
}

func TestExtractPosting(t *testing.T) {
	extracted, err := ExtractPosting(samplePostingHTML)
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer", extracted.Title)
	assert.Equal(t, "Acme Corp", extracted.Company)
	assert.Contains(t, extracted.Description, "Go and PostgreSQL")
	assert.Contains(t, extracted.Description, "5+ years")
	assert.NotContains(t, extracted.Description, "Copyright")
	assert.NotContains(t, extracted.Description, "Home | Jobs")
}

func TestExtractPosting_TitleFallback(t *testing.T) {
	html := `<html><head><title>Platform Engineer - Example</title></head>
		<body><p>Posting body text here.</p></body></html>`

	extracted, err := ExtractPosting(html)
	require.NoError(t, err)

	assert.Equal(t, "Platform Engineer - Example", extracted.Title)
	assert.Empty(t, extracted.Company)
	assert.Contains(t, extracted.Description, "Posting body text")
}

func TestExtractPosting_BodyFallback(t *testing.T) {
	html := `<html><body><p>Line one</p><p>Line two</p></body></html>`

	extracted, err := ExtractPosting(html)
	require.NoError(t, err)
	assert.Contains(t, extracted.Description, "Line one")
	assert.Contains(t, extracted.Description, "Line two")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("short content"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("job posting text ", 40)))
}
