package converter

import "testing"

func BenchmarkConvert(b *testing.B) {
	conv, err := New(Config{})
	if err != nil {
		b.Fatalf("failed to create converter: %v", err)
	}

	input := `<h1>Heading</h1>
<p>This is <strong>bold</strong> text with a <a href="https://example.com">link</a>.</p>
<ul>
  <li><input type="checkbox"> Task one</li>
  <li><input type="checkbox" checked> Task two</li>
</ul>
<table>
  <tr><th>Name</th><th>Value</th></tr>
  <tr><td>A</td><td>1</td></tr>
  <tr><td>B</td><td>2</td></tr>
</table>
<pre><code class="language-go">func main() {}</code></pre>
<blockquote><p>Quoted text</p></blockquote>
`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := conv.Convert(input); err != nil {
			b.Fatalf("convert failed: %v", err)
		}
	}
}
