package samples

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/jsonreq/request"
)

func TestBuildSamples(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindSingle, `{"User":{"id":38710}}`},
		{KindColumns, `{"User":{"id":38710,"@column":"id%2Csex%2Cname"}}`},
		{KindRely, `{"Moment":{"userId":38710},"User":{"id@":"Moment%2FuserId"}}`},
		{KindArray, `{"[]":{"User":{"sex":0,"name$":"%25a%25"},"count":10,"page":0}}`},
		{KindComplex, `{"[]":{"User":{"sex":0},"Moment":{"userId@":"%5B%5D%2FUser%2Fid"},"Comment[]":{"Comment":{"momentId@":"%5B%5D%2FMoment%2Fid"},"count":3,"page":0},"count":3,"page":0}}`},
		{KindDelete, `{"Moment":{"id":38710},"tag":"Moment"}`},
		{KindAccessError, `{"Wallet":{"userId":38710}}`},
		{KindAccessPermitted, `{"Wallet":{"userId":38710},"currentUserId":38710,"tag":"Wallet"}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			r, err := Build(tt.kind, Params{})
			require.NoError(t, err)

			data, err := json.Marshal(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestBuildWriteSamples(t *testing.T) {
	post, err := Build(KindPost, Params{ID: 7, URL: "http://example.com/a b.png"})
	require.NoError(t, err)
	assert.Equal(t, "Moment", post.Tag())
	moment := post.GetObject("Moment")
	require.NotNil(t, moment)
	assert.Equal(t, int64(7), moment.GetRaw("userId"))
	assert.Equal(t, sampleContent, moment.Get("content"))
	assert.Equal(t, "http://example.com/a b.png", moment.Get("picture"))

	put, err := Build(KindPut, Params{ID: 7})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "content"}, put.GetObject("Moment").Keys())
	assert.Equal(t, "Moment", put.Tag())
}

func TestEverySampleBuilds(t *testing.T) {
	for _, k := range Kinds() {
		r, err := Build(k, Params{ID: 1})
		require.NoError(t, err, k)
		assert.Positive(t, r.Len(), k)

		data, err := json.Marshal(r)
		require.NoError(t, err)
		parsed, err := request.Parse(data)
		require.NoError(t, err)
		assert.Equal(t, r.Keys(), parsed.Keys())
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Access-Error")
	require.NoError(t, err)
	assert.Equal(t, KindAccessError, k)

	_, err = ParseKind("patch")
	assert.Error(t, err)

	_, err = Build(Kind("patch"), Params{})
	assert.Error(t, err)
}

func TestKinds(t *testing.T) {
	ks := Kinds()
	assert.Len(t, ks, 10)
	assert.Equal(t, KindPost, ks[0])
	assert.True(t, KindDelete.IsWrite())
	assert.False(t, KindArray.IsWrite())

	ks[0] = "mutated"
	assert.Equal(t, KindPost, Kinds()[0])
}
