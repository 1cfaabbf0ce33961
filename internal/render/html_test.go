package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kathiroli/travel-claim/internal/report"
)

func TestHTMLRenderer_Render(t *testing.T) {
	r := NewHTMLRenderer()

	t.Run("renders the bounded grid", func(t *testing.T) {
		sh := report.NewSheet("Statement", 2, 3, nil)
		sh.SetText("A1", "label")
		sh.SetNumber("B2", 1500)

		out := r.Render(sh)

		assert.Contains(t, out, `<div class="excel-sheet">`)
		assert.Contains(t, out, "<h3>Statement</h3>")
		assert.Contains(t, out, "<td>label</td>")
		assert.Contains(t, out, `<td class="num">1500.00</td>`)
		// 2 rows x 3 cols, populated or not.
		assert.Equal(t, 2, strings.Count(out, "<tr>"))
		assert.Equal(t, 6, strings.Count(out, "<td"))
	})

	t.Run("escapes text content", func(t *testing.T) {
		sh := report.NewSheet("S<&>", 1, 1, nil)
		sh.SetText("A1", `<script>alert("x")</script>`)

		out := r.Render(sh)

		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "&lt;script&gt;")
		assert.Contains(t, out, "<h3>S&lt;&amp;&gt;</h3>")
	})

	t.Run("numbers keep two decimals", func(t *testing.T) {
		sh := report.NewSheet("N", 1, 1, nil)
		sh.SetNumber("A1", 1234.5)

		assert.Contains(t, r.Render(sh), "1234.50")
	})
}

func TestHTMLRenderer_RenderAll(t *testing.T) {
	r := NewHTMLRenderer()

	first := report.NewSheet("One", 1, 1, nil)
	second := report.NewSheet("Two", 1, 1, nil)

	out := r.RenderAll([]*report.Sheet{first, second})
	assert.Contains(t, out, "<h3>One</h3>")
	assert.Contains(t, out, "<h3>Two</h3>")
	assert.Less(t, strings.Index(out, "One"), strings.Index(out, "Two"))
}
