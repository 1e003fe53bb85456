package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	tests := []struct {
		mode SearchMode
		in   string
		want string
	}{
		{ContainFull, "ab", "%ab%"},
		{ContainSingle, "ab", "_ab_"},
		{ContainOrder, "ab", "%a%b%"},
		{ContainOrder, "", "%"},
		{ContainOrder, "中文", "%中%文%"},
		{Start, "ab", "ab%"},
		{End, "ab", "%ab"},
		{StartSingle, "ab", "ab_"},
		{EndSingle, "ab", "_ab"},
		{NoContain, "ab", "[^ab]"},
		{NoPartMatch, "ab", "[^a][^b]"},
		{NoPartMatch, "", ""},
		{ContainAny, "ab", "%ab%"},
		{PartMatch, "ab", "%ab%"},
		{SearchMode(42), "ab", "%ab%"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Search(tt.in, tt.mode))
		})
	}
}

func TestSearchPatternNil(t *testing.T) {
	for _, mode := range SearchModes() {
		assert.Nil(t, SearchPattern(nil, mode, true), mode.String())
		assert.Nil(t, SearchPattern(nil, mode, false), mode.String())
	}
}

func TestSearchPatternIgnoreCaseIsAHint(t *testing.T) {
	in := "Ab"
	for _, mode := range SearchModes() {
		folded := SearchPattern(&in, mode, true)
		exact := SearchPattern(&in, mode, false)
		require.NotNil(t, folded)
		require.NotNil(t, exact)
		assert.Equal(t, *folded, *exact, mode.String())
	}
}

func TestParseSearchMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SearchMode
		wantErr bool
	}{
		{in: "", want: ContainFull},
		{in: "contain_order", want: ContainOrder},
		{in: "NO-PART-MATCH", want: NoPartMatch},
		{in: " start ", want: Start},
		{in: "9", want: NoContain},
		{in: "11", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "fuzzy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSearchMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchModeTags(t *testing.T) {
	assert.Equal(t, SearchMode(0), ContainFull)
	assert.Equal(t, SearchMode(3), ContainAny)
	assert.Equal(t, SearchMode(10), NoPartMatch)
	assert.Len(t, SearchModes(), 11)
	assert.Equal(t, "search_mode(-1)", SearchMode(-1).String())
}

func TestPutSearch(t *testing.T) {
	r := New()
	r.PutSearch("name", "ab")

	assert.Equal(t, []string{"name$"}, r.Keys())
	assert.Equal(t, "%25ab%25", r.GetRaw("name$"))
	assert.Equal(t, "%ab%", r.Get("name$"))

	r.PutSearchWith("name$", "ab", Start)
	assert.Equal(t, []string{"name$"}, r.Keys())
	assert.Equal(t, "ab%", r.Get("name$"))

	r.PutSearchWith("", "x", End)
	assert.Equal(t, "%x", r.Get("$"))
}
