package scopt

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []token
	}{
		{
			name: "long option without value",
			args: []string{"--opt"},
			want: []token{{kind: tokLong, text: "opt", raw: "--opt"}},
		},
		{
			name: "long option equals value",
			args: []string{"--opt=5"},
			want: []token{{kind: tokLong, text: "opt", val: "5", hasVal: true, raw: "--opt=5"}},
		},
		{
			name: "long option colon value",
			args: []string{"--opt:5"},
			want: []token{{kind: tokLong, text: "opt", val: "5", hasVal: true, raw: "--opt:5"}},
		},
		{
			name: "key-value splits at first separator",
			args: []string{"--max:libA=5"},
			want: []token{{kind: tokLong, text: "max", val: "libA=5", hasVal: true, raw: "--max:libA=5"}},
		},
		{
			name: "short option",
			args: []string{"-v"},
			want: []token{{kind: tokShort, text: "v", raw: "-v"}},
		},
		{
			name: "short option equals value",
			args: []string{"-j=4"},
			want: []token{{kind: tokShort, text: "j", val: "4", hasVal: true, raw: "-j=4"}},
		},
		{
			name: "short option colon value",
			args: []string{"-j:4"},
			want: []token{{kind: tokShort, text: "j", val: "4", hasVal: true, raw: "-j:4"}},
		},
		{
			name: "tentative cluster",
			args: []string{"-abc"},
			want: []token{{kind: tokCluster, text: "abc", raw: "-abc"}},
		},
		{
			name: "plain tokens",
			args: []string{"update", "file.txt"},
			want: []token{
				{kind: tokPlain, text: "update", raw: "update"},
				{kind: tokPlain, text: "file.txt", raw: "file.txt"},
			},
		},
		{
			name: "terminator forces plain",
			args: []string{"--", "-v", "--opt"},
			want: []token{
				{kind: tokPlain, text: "-v", raw: "-v", literal: true},
				{kind: tokPlain, text: "--opt", raw: "--opt", literal: true},
			},
		},
		{
			name: "bare dash is plain",
			args: []string{"-"},
			want: []token{{kind: tokPlain, text: "-", raw: "-"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tokenize(tc.args)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("tokenize(%v) = %#v, want %#v", tc.args, got, tc.want)
			}
		})
	}
}
