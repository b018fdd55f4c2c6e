package i18n

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Title LocalizedString `json:"title"`
	Slug  LocalizedSlug   `json:"slug"`
	Body  LocalizedText   `json:"body"`
	Name  LocalizedString `json:"name"`
}

func decode(t *testing.T, raw string) record {
	t.Helper()
	var r record
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	return r
}

func TestResolvePerLocale(t *testing.T) {
	r := decode(t, `{"title":{"_type":"localeString","en":"Andes","es":"Los Andes"}}`)

	assert.Equal(t, "Andes", String(&r.Title, EN))
	assert.Equal(t, "Los Andes", String(&r.Title, ES))
}

func TestResolveMissingLocaleNeverFallsBack(t *testing.T) {
	r := decode(t, `{"title":{"en":"Andes"},"body":{"en":[{"_type":"block","children":[{"_type":"span","text":"hi"}]}]},"slug":{"en":{"current":"andes"}}}`)

	assert.Equal(t, "", String(&r.Title, ES))
	assert.Empty(t, Text(&r.Body, ES))
	assert.NotNil(t, Text(&r.Body, ES))
	assert.Nil(t, Slug(&r.Slug, ES))
	require.NotNil(t, Slug(&r.Slug, EN))
	assert.Equal(t, "andes", Slug(&r.Slug, EN).Current)
}

func TestResolvePlainValueUnchanged(t *testing.T) {
	r := decode(t, `{"name":"Lima","slug":{"_type":"slug","current":"lima"}}`)

	assert.True(t, r.Name.IsPlain())
	assert.Equal(t, "Lima", String(&r.Name, EN))
	assert.Equal(t, "Lima", String(&r.Name, ES))
	assert.Equal(t, "lima", SlugString(&r.Slug, ES))
}

func TestResolveAbsent(t *testing.T) {
	r := decode(t, `{"title":null}`)

	assert.True(t, r.Title.IsAbsent())
	assert.True(t, r.Slug.IsAbsent())
	assert.Equal(t, "", String(&r.Title, EN))
	assert.Equal(t, "", String(nil, EN))
	assert.Empty(t, Text(nil, ES))
	assert.Nil(t, Slug(nil, EN))
}

func TestResolveIgnoresUnservedLocales(t *testing.T) {
	r := decode(t, `{"title":{"fr":"x"},"name":{"_type":"localeString","en":"hi","de":"hallo"},"body":{"de":[{"_type":"block"}]}}`)

	assert.False(t, r.Title.IsPlain())
	assert.Equal(t, "", String(&r.Title, EN))
	assert.Equal(t, "", String(&r.Title, ES))
	assert.Equal(t, "hi", String(&r.Name, EN))
	assert.Equal(t, "", String(&r.Name, ES))
	assert.Empty(t, Text(&r.Body, EN))
}

func TestResolveUnservedLocalesInList(t *testing.T) {
	var out []record
	require.NoError(t, json.Unmarshal([]byte(`[{"title":{"fr":"x"}},{"title":{"en":"Sea","es":"Mar"}}]`), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Mar", String(&out[1].Title, ES))
}

func TestLocalizedRoundTrip(t *testing.T) {
	in := PerLocale(map[Locale]string{EN: "Sea", ES: "Mar"})
	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out LocalizedString
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Mar", out.Resolve(ES))

	raw, err = json.Marshal(LocalizedString{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestLocalizedDecodeError(t *testing.T) {
	var out LocalizedString
	err := json.Unmarshal([]byte(`{"en":42}`), &out)
	require.Error(t, err)
}

func TestFormatYears(t *testing.T) {
	end := 2022
	same := 2020
	zero := 0

	cases := []struct {
		name    string
		start   int
		end     *int
		ongoing bool
		loc     Locale
		want    string
	}{
		{"no start", 0, &end, false, EN, ""},
		{"ongoing en", 2021, nil, true, EN, "2021 - Present"},
		{"ongoing es", 2021, &end, true, ES, "2021 - Presente"},
		{"range", 2020, &end, false, EN, "2020 - 2022"},
		{"same year", 2020, &same, false, EN, "2020"},
		{"zero end", 2019, &zero, false, ES, "2019"},
		{"no end", 2018, nil, false, EN, "2018"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatYears(tc.start, tc.end, tc.ongoing, tc.loc))
		})
	}
}

func TestParseAndPaths(t *testing.T) {
	l, ok := Parse(" ES ")
	assert.True(t, ok)
	assert.Equal(t, ES, l)
	_, ok = Parse("fr")
	assert.False(t, ok)
	assert.Equal(t, EN, OrDefault("fr"))

	assert.True(t, HasPrefix("/en"))
	assert.True(t, HasPrefix("/es/shop/print"))
	assert.False(t, HasPrefix("/english"))
	assert.False(t, HasPrefix("/"))

	assert.Equal(t, "/es/about", SwitchPath("/en/about", EN, ES))
	assert.Equal(t, "/en", SwitchPath("/es", ES, EN))
	assert.Equal(t, "/es", SwitchPath("/checkout", EN, ES))
}

func TestBundle(t *testing.T) {
	b, err := Embedded()
	require.NoError(t, err)

	assert.Equal(t, "Contacto", b.T(ES, "common.contact"))
	assert.Equal(t, "Showing 3 photographs", b.Tf(EN, "common.showing", map[string]string{"count": "3"}))
	assert.Equal(t, "missing.key", b.T(ES, "missing.key"))
}

func TestBundleFallsBackToDefaultDictionary(t *testing.T) {
	fsys := fstest.MapFS{
		"l/en.json": {Data: []byte(`{"a":"A","b":"B"}`)},
		"l/es.json": {Data: []byte(`{"a":"Á"}`)},
	}
	b, err := Load(fsys, "l", EN)
	require.NoError(t, err)

	assert.Equal(t, "Á", b.T(ES, "a"))
	assert.Equal(t, "B", b.T(ES, "b"))

	_, err = Load(fstest.MapFS{}, "l", EN)
	require.Error(t, err)
}

func TestNegotiate(t *testing.T) {
	assert.Equal(t, ES, Negotiate("es-MX,es;q=0.9,en;q=0.5"))
	assert.Equal(t, EN, Negotiate("en-GB"))
	assert.Equal(t, ES, Negotiate("fr;q=0.9, es;q=0.8"))
	assert.Equal(t, EN, Negotiate("ja"))
	assert.Equal(t, EN, Negotiate(""))
	assert.Equal(t, EN, Negotiate("!!garbage"))
}
