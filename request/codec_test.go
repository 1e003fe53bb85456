package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLCodecRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"a b c",
		"User/id",
		"%ab%",
		"_a_",
		"[^ab]",
		"a+b=c&d?e#f",
		"中文搜索",
		"emoji 🙂",
		"~!*'();:@$,",
	}

	var codec URLCodec
	for _, in := range inputs {
		enc := codec.Encode(in)
		require.False(t, enc.Fallback, "encode %q", in)
		dec := codec.Decode(enc.Value)
		require.False(t, dec.Fallback, "decode %q", enc.Value)
		assert.Equal(t, in, dec.Value)
	}
}

func TestURLCodecEncode(t *testing.T) {
	var codec URLCodec
	assert.Equal(t, "a+b", codec.Encode("a b").Value)
	assert.Equal(t, "%25ab%25", codec.Encode("%ab%").Value)
	assert.Equal(t, "User%2Fid", codec.Encode("User/id").Value)
}

func TestURLCodecFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		run     func(URLCodec) Result
		input   string
		wantErr []error
	}{
		{
			name:    "encode invalid utf-8",
			run:     func(c URLCodec) Result { return c.Encode("\xfe\xff") },
			input:   "\xfe\xff",
			wantErr: []error{ErrEncode, ErrInvalidUTF8},
		},
		{
			name:    "decode malformed escape",
			run:     func(c URLCodec) Result { return c.Decode("%zz") },
			input:   "%zz",
			wantErr: []error{ErrDecode},
		},
		{
			name:    "decode truncated escape",
			run:     func(c URLCodec) Result { return c.Decode("50%") },
			input:   "50%",
			wantErr: []error{ErrDecode},
		},
		{
			name:    "decode to invalid utf-8",
			run:     func(c URLCodec) Result { return c.Decode("%FF") },
			input:   "%FF",
			wantErr: []error{ErrDecode, ErrInvalidUTF8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.run(URLCodec{})
			assert.True(t, res.Fallback)
			assert.Equal(t, tt.input, res.Value)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, res.Err, want)
			}
		})
	}
}

func TestURLCodecDecodesPlus(t *testing.T) {
	res := URLCodec{}.Decode("a+b")
	assert.False(t, res.Fallback)
	assert.NoError(t, res.Err)
	assert.Equal(t, "a b", res.Value)
}
