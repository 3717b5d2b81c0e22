package main

import (
	"reflect"
	"testing"
)

func TestRewriteLegacyFlagArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"todo"},
			want: []string{"todo"},
		},
		{
			name: "short add",
			in:   []string{"todo", "-a", "buy milk"},
			want: []string{"todo", "add", "buy milk"},
		},
		{
			name: "long add with equals",
			in:   []string{"todo", "--add=buy milk"},
			want: []string{"todo", "add", "buy milk"},
		},
		{
			name: "delete after target flag",
			in:   []string{"todo", "-t", "work", "-d", "2 4"},
			want: []string{"todo", "-t", "work", "delete", "2 4"},
		},
		{
			name: "list after equals flag",
			in:   []string{"todo", "--target=work", "-l"},
			want: []string{"todo", "--target=work", "list"},
		},
		{
			name: "reset after bool flag",
			in:   []string{"todo", "--no-color", "--reset"},
			want: []string{"todo", "--no-color", "reset"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"todo", "add", "-a"},
			want: []string{"todo", "add", "-a"},
		},
		{
			name: "target value that looks like a legacy flag",
			in:   []string{"todo", "-t", "-l"},
			want: []string{"todo", "-t", "-l"},
		},
		{
			name: "after double dash",
			in:   []string{"todo", "--", "-a", "x"},
			want: []string{"todo", "--", "-a", "x"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteLegacyFlagArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteLegacyFlagArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
