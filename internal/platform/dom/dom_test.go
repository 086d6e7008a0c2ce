package dom

import "testing"

const fixtureHTML = `<html><body>
<table id="t">
  <caption>  Jornada 5 </caption>
  <tbody>
    <tr><td>  1 </td><td>
      Club   Patí  Vic
    </td></tr>
    <tr><td>2</td><td></td></tr>
  </tbody>
</table>
</body></html>`

func mustParse(t *testing.T, html string) Node {
	t.Helper()
	root, err := ParseString(html)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return root
}

func TestText_AbsentNodeIsEmpty(t *testing.T) {
	t.Parallel()

	if got := Text(nil); got != "" {
		t.Fatalf("expected empty text for absent node, got %q", got)
	}

	root := mustParse(t, fixtureHTML)
	if got := Text(root.QueryFirst("td.missing")); got != "" {
		t.Fatalf("expected empty text for selector miss, got %q", got)
	}
}

func TestText_TrimsOuterWhitespaceOnly(t *testing.T) {
	t.Parallel()

	root := mustParse(t, fixtureHTML)
	if got := Text(root.QueryFirst("caption")); got != "Jornada 5" {
		t.Fatalf("unexpected caption text: %q", got)
	}
	if got := Text(root.QueryFirst("tbody tr td:nth-child(2)")); got != "Club   Patí  Vic" {
		t.Fatalf("expected internal whitespace preserved, got %q", got)
	}
}

func TestQueryAll_PreservesDocumentOrderAndScope(t *testing.T) {
	t.Parallel()

	root := mustParse(t, fixtureHTML)
	rows := root.QueryAll("#t tbody tr")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if got := Text(rows[0].QueryFirst("td:nth-child(1)")); got != "1" {
		t.Fatalf("unexpected first row rank: %q", got)
	}
	if got := Text(rows[1].QueryFirst("td:nth-child(1)")); got != "2" {
		t.Fatalf("unexpected second row rank: %q", got)
	}
	if got := rows[1].QueryFirst("td:nth-child(2)"); got == nil {
		t.Fatalf("expected present-but-empty cell to resolve to a node")
	}
	if got := Text(rows[1].QueryFirst("td:nth-child(2)")); got != "" {
		t.Fatalf("expected empty cell text, got %q", got)
	}
	if got := rows[0].QueryAll("caption"); len(got) != 0 {
		t.Fatalf("expected row scope to exclude the table caption, got %d nodes", len(got))
	}
}
