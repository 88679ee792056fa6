package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/llmscrape"
	"github.com/fwojciec/llmscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements llmscrape.Extractor at compile time.
var _ llmscrape.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and body text", func(t *testing.T) {
		t.Parallel()

		html := "<html><head><title>T</title></head><body><script>x</script><p>Hello   world</p>\n\n\n<p>Bye</p></body></html>"

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "T", result.Title)
		assert.Equal(t, "Hello   world \n\n\n Bye", result.Text)
		assert.Equal(t, "Hello world\nBye", llmscrape.CleanText(result.Text))
	})

	t.Run("returns sentinel title when page has none", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract("<html><body><p>content</p></body></html>")

		require.NoError(t, err)
		assert.Equal(t, llmscrape.NoTitle, result.Title)
		assert.Equal(t, "content", result.Text)
	})

	t.Run("removes every boilerplate element with its descendants", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Docs</title><style>body { color: red; }</style></head>
<body>
<header><h1>Site header</h1></header>
<nav><a href="/">Home</a></nav>
<aside><p>Sidebar <b>bold</b></p></aside>
<main>
<p>Main content</p>
<form><label>Email</label><input name="email"></form>
<button><span>Click</span></button>
<svg><title>Icon</title><text>vector</text></svg>
<noscript>Enable JavaScript</noscript>
<script>var tracking = true;</script>
</main>
<footer>Copyright</footer>
</body>
</html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Docs", result.Title)
		assert.Equal(t, "Main content", llmscrape.CleanText(result.Text))
		for _, removed := range []string{"Site header", "Home", "Sidebar", "bold", "Email", "Click", "Icon", "vector", "Enable JavaScript", "tracking", "Copyright", "color"} {
			assert.NotContains(t, result.Text, removed)
		}
	})

	t.Run("yields empty content when page only has boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<script>a()</script><style>p{}</style><header>h</header><footer>f</footer>` +
			`<nav>n</nav><aside>a</aside><form>f</form><button>b</button><svg><text>s</text></svg><noscript>ns</noscript>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, llmscrape.CleanText(result.Text))
	})

	t.Run("excludes comments and head text", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Title</title><meta name="x" content="y"></head><body><!-- hidden --><p>shown</p></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "shown", result.Text)
	})

	t.Run("joins adjacent text nodes with a space", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract("<body><span>one</span><span>two</span>three</body>")

		require.NoError(t, err)
		assert.Equal(t, "one two three", result.Text)
	})

	t.Run("decodes entities", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract("<body><p>Fish &amp; Chips&nbsp;</p></body>")

		require.NoError(t, err)
		assert.Equal(t, "Fish & Chips", llmscrape.CleanText(result.Text))
	})

	t.Run("keeps raw title text", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract("<html><head><title>A &amp; B</title></head><body></body></html>")

		require.NoError(t, err)
		assert.Equal(t, "A & B", result.Title)
	})

	t.Run("returns empty result for empty input", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract("")

		require.NoError(t, err)
		assert.Equal(t, llmscrape.NoTitle, result.Title)
		assert.Empty(t, result.Text)
	})

	t.Run("handles long documents", func(t *testing.T) {
		t.Parallel()

		html := "<body><p>" + strings.Repeat("x", 5000) + "</p></body>"

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Len(t, result.Text, 5000)
	})
}

func TestNewExtractorWithTags(t *testing.T) {
	t.Parallel()

	t.Run("removes only the given tags", func(t *testing.T) {
		t.Parallel()

		html := `<body><nav>menu</nav><div class="ad">ad</div><p>text</p></body>`

		result, err := goquery.NewExtractorWithTags([]string{"div"}).Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "menu text", result.Text)
	})

	t.Run("removes nothing with empty tag list", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractorWithTags(nil).Extract(`<body><nav>menu</nav><p>text</p></body>`)

		require.NoError(t, err)
		assert.Equal(t, "menu text", result.Text)
	})
}
