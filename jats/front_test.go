package jats

import (
	"slices"
	"testing"

	"lensconv/document"
)

const frontArticle = `<article>
<front>
	<journal-meta><publisher><publisher-name>Acme</publisher-name></publisher></journal-meta>
	<article-meta>
		<article-id pub-id-type="doi">10.1/art</article-id>
		<title-group><article-title>Title</article-title></title-group>
		<contrib-group>
			<contrib contrib-type="author" id="c1">
				<name><surname>Doe</surname><given-names>Jane</given-names></name>
				<xref ref-type="aff" rid="aff1 aff9"/>
				<email>j@x.org</email>
			</contrib>
			<contrib contrib-type="editor"><collab>Group</collab></contrib>
			<contrib contrib-type="author"/>
		</contrib-group>
		<aff id="aff1"><label>1</label><institution>Uni</institution>, City</aff>
		<aff id="aff2"><label>2</label>Lab of   Things, Town</aff>
		<pub-date pub-type="epub"><day>5</day><month>3</month><year>2012</year></pub-date>
		<abstract><p>Short.</p><sec><title>Background</title><p>More.</p></sec></abstract>
		<abstract abstract-type="summary"><title>eLife digest</title><p>Digest.</p></abstract>
	</article-meta>
</front>
</article>`

func TestFront(t *testing.T) {
	d, res := mustConvert(t, frontArticle)

	root := d.Root()
	if d.ID() != "10.1/art" || root.DOI != "10.1/art" || root.Title != "Title" {
		t.Fatalf("unexpected root %+v (id %q)", root, d.ID())
	}
	if root.Publisher != "Acme" || root.Created != "2012-03-05" {
		t.Fatalf("unexpected root metadata %+v", root)
	}
	if !slices.Equal(root.Authors, []string{"person_1", "person_3"}) {
		t.Fatalf("authors = %v", root.Authors)
	}

	author := getNode[*document.Person](t, d, "person_1")
	if author.Name != "Jane Doe" || author.Role != "author" || author.Source != "c1" {
		t.Fatalf("unexpected author %+v", author)
	}
	if !slices.Equal(author.Affiliations, []string{"institution_1", "aff9"}) {
		t.Fatalf("affiliations = %v", author.Affiliations)
	}
	if !slices.Equal(author.Emails, []string{"j@x.org"}) {
		t.Fatalf("emails = %v", author.Emails)
	}
	if editor := getNode[*document.Person](t, d, "person_2"); editor.Name != "Group" || editor.Role != "editor" {
		t.Fatalf("unexpected editor %+v", editor)
	}
	if !hasGap(res, "Contributor has no name") {
		t.Fatalf("expected gap for nameless contributor")
	}

	if inst := getNode[*document.Institution](t, d, "institution_1"); inst.Label != "1" || inst.Name != "Uni" {
		t.Fatalf("unexpected institution %+v", inst)
	}
	if inst := getNode[*document.Institution](t, d, "institution_2"); inst.Label != "2" || inst.Name != "Lab of Things, Town" {
		t.Fatalf("unexpected institution %+v", inst)
	}

	cover := getNode[*document.Cover](t, d, document.CoverID)
	if cover.Title != "Title" || !slices.Equal(cover.Authors, root.Authors) {
		t.Fatalf("unexpected cover %+v", cover)
	}

	want := []string{"cover", "heading_1", "paragraph_1", "heading_2", "paragraph_2", "heading_3", "paragraph_3"}
	if got := d.View(document.ViewContent); !slices.Equal(got, want) {
		t.Fatalf("content view = %v, want %v", got, want)
	}
	if h := getNode[*document.Heading](t, d, "heading_1"); h.Content != "Abstract" || h.Level != 1 {
		t.Fatalf("unexpected abstract heading %+v", h)
	}
	if h := getNode[*document.Heading](t, d, "heading_2"); h.Content != "Background" || h.Level != 2 {
		t.Fatalf("abstract section must be one level below: %+v", h)
	}
	if h := getNode[*document.Heading](t, d, "heading_3"); h.Content != "eLife digest" || h.Level != 1 {
		t.Fatalf("unexpected digest heading %+v", h)
	}
}

func TestPublicationDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
		gap  bool
	}{
		{"full", `<day>5</day><month>3</month><year>2012</year>`, "2012-03-05", false},
		{"year only", `<year>2012</year>`, "2012-01-01", false},
		{"bad month", `<month>13</month><year>2012</year>`, "2012-01-01", true},
		{"bad day", `<day>x</day><year>2012</year>`, "2012-01-01", true},
		{"day past month end", `<day>31</day><month>2</month><year>2020</year>`, "2020-01-01", true},
		{"leap day", `<day>29</day><month>2</month><year>2020</year>`, "2020-02-29", false},
		{"zero day", `<day>0</day><month>2</month><year>2020</year>`, "2020-01-01", true},
		{"no year", `<month>3</month>`, "", true},
		{"bad year", `<year>MMXII</year>`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, res := mustConvert(t, `<article><front><article-meta><pub-date>`+tt.date+`</pub-date></article-meta></front></article>`)
			if d.Root().Created != tt.want {
				t.Fatalf("created = %q, want %q", d.Root().Created, tt.want)
			}
			if (len(res.Gaps) > 0) != tt.gap {
				t.Fatalf("gaps = %v, want gap %v", res.Gaps, tt.gap)
			}
		})
	}
}

func TestCitations(t *testing.T) {
	back := `<ref-list>
		<ref id="r1"><label>1</label>
			<element-citation publication-type="journal">
				<person-group person-group-type="author">
					<name><surname>Doe</surname><given-names>J</given-names></name>
					<collab>Team</collab>
				</person-group>
				<article-title>Study</article-title>
				<source>Nature</source><year>2001</year><volume>5</volume><fpage>1</fpage><lpage>9</lpage>
				<pub-id pub-id-type="doi">10.1/abc</pub-id>
				<ext-link ext-link-type="uri" xlink:href="http://x.org">x</ext-link>
				<ext-link ext-link-type="uri">http://y.org</ext-link>
			</element-citation>
		</ref>
		<ref id="r2"><mixed-citation>Plain text citation.</mixed-citation></ref>
		<ref id="r3"><nlm-citation><person-group><name><surname>Roe</surname></name></person-group>
			<ext-link ext-link-type="doi">10.1/def</ext-link></nlm-citation><note/></ref>
	</ref-list>`
	d, res := mustConvert(t, wrap("", back))

	if got, want := d.View(document.ViewCitations), []string{"article_citation_1", "article_citation_2"}; !slices.Equal(got, want) {
		t.Fatalf("citations view = %v, want %v", got, want)
	}

	c := getNode[*document.Citation](t, d, "article_citation_1")
	if c.Source != "Nature" || c.Year != "2001" || c.Volume != "5" || c.FPage != "1" || c.LPage != "9" {
		t.Fatalf("unexpected citation fields %+v", c)
	}
	if c.Label != "1" || c.Title != "Study" || c.DOI != "http://dx.doi.org/10.1/abc" || c.SourceID() != "r1" {
		t.Fatalf("unexpected citation %+v", c)
	}
	if !slices.Equal(c.Authors, []string{"J Doe", "Team"}) {
		t.Fatalf("authors = %v", c.Authors)
	}
	if !slices.Equal(c.URLs, []string{"http://x.org", "http://y.org"}) {
		t.Fatalf("urls = %v", c.URLs)
	}

	c = getNode[*document.Citation](t, d, "article_citation_2")
	if c.Title != "N/A" || c.DOI != "http://dx.doi.org/10.1/def" || c.SourceID() != "r3" {
		t.Fatalf("unexpected citation %+v", c)
	}

	for _, msg := range []string{"Unstructured citation is not supported", "Citation has no title", "Element not supported in reference"} {
		if !hasGap(res, msg) {
			t.Fatalf("expected gap %q in %v", msg, res.Gaps)
		}
	}
}

func TestBack(t *testing.T) {
	back := `<ack><title>Thanks</title><p>Funding.</p></ack>` +
		`<app-group><app id="app1"><label>Appendix 1</label><p>More.</p></app><app><p>None.</p></app></app-group>` +
		`<sec><title>Extra</title><p>e</p></sec>` +
		`<fn-group><fn><p>f</p></fn></fn-group>` +
		`<ack><p>Plain.</p></ack>` +
		`<ref-list/>`
	d, res := mustConvert(t, wrap("", back))

	want := []string{"cover",
		"heading_1", "paragraph_1",
		"heading_2", "paragraph_2",
		"heading_3", "paragraph_3",
		"heading_4", "paragraph_4",
		"heading_5", "paragraph_5",
	}
	if got := d.View(document.ViewContent); !slices.Equal(got, want) {
		t.Fatalf("content view = %v, want %v", got, want)
	}

	tests := []struct {
		id      string
		label   string
		content string
	}{
		{"heading_1", "", "Thanks"},
		{"heading_2", "Appendix 1", "Appendix 1"},
		{"heading_3", "", "Appendix"},
		{"heading_4", "", "Extra"},
		{"heading_5", "", "Acknowledgements"},
	}
	for _, tt := range tests {
		h := getNode[*document.Heading](t, d, tt.id)
		if h.Level != 1 || h.Label != tt.label || h.Content != tt.content {
			t.Fatalf("%s = level %d label %q content %q", tt.id, h.Level, h.Label, h.Content)
		}
	}
	if len(res.Gaps) != 1 || res.Gaps[0].Element != "fn-group" {
		t.Fatalf("unexpected gaps %v", res.Gaps)
	}
}

func TestDoiURL(t *testing.T) {
	tests := []struct{ doi, want string }{
		{"", ""},
		{"10.7554/eLife.00005", "http://dx.doi.org/10.7554/eLife.00005"},
		{"https://doi.org/10.1/x", "https://doi.org/10.1/x"},
		{"http://dx.doi.org/10.1/x", "http://dx.doi.org/10.1/x"},
	}
	for _, tt := range tests {
		if got := doiURL(tt.doi); got != tt.want {
			t.Errorf("doiURL(%q) = %q, want %q", tt.doi, got, tt.want)
		}
	}
}

func TestFrontLanguage(t *testing.T) {
	tests := []struct{ attr, want string }{
		{``, ""},
		{` xml:lang="en-us"`, "en-US"},
		{` xml:lang="pt-br"`, "pt-BR"},
		{` xml:lang="12345"`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			d, _ := mustConvert(t, `<article`+tt.attr+`><front><article-meta/></front></article>`)
			if got := d.Root().Language; got != tt.want {
				t.Fatalf("language = %q, want %q", got, tt.want)
			}
		})
	}
}
