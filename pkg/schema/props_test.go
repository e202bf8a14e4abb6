package schema

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-arkgen/pkg/model"
)

func TestParseProps(t *testing.T) {
	props, warnings := ParseProps("name:string, email:string?, age:number")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	want := []model.Property{
		{Name: "name", Type: model.TypeString},
		{Name: "email", Type: model.TypeString, Optional: true},
		{Name: "age", Type: model.TypeNumber},
	}
	if diff := cmp.Diff(want, props); diff != "" {
		t.Fatalf("properties mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePropsSkipsMalformedEntries(t *testing.T) {
	props, warnings := ParseProps("name:string,email,age:integer,active:boolean")

	want := []model.Property{
		{Name: "name", Type: model.TypeString},
		{Name: "active", Type: model.TypeBoolean},
	}
	if diff := cmp.Diff(want, props); diff != "" {
		t.Fatalf("properties mismatch (-want +got):\n%s", diff)
	}

	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
	if got := warnings[0].String(); !strings.Contains(got, "email") || !strings.Contains(got, "separator") {
		t.Fatalf("first warning = %q", got)
	}
	if got := warnings[1].String(); !strings.Contains(got, "integer") {
		t.Fatalf("second warning = %q", got)
	}
}

func TestParsePropsEmptyInput(t *testing.T) {
	props, warnings := ParseProps("   ")
	if props != nil || warnings != nil {
		t.Fatalf("ParseProps(blank) = %v, %v, want nil, nil", props, warnings)
	}
}

func TestParsePropLine(t *testing.T) {
	cases := []struct {
		entry   string
		want    model.Property
		wantErr string
	}{
		{entry: "title:string", want: model.Property{Name: "title", Type: model.TypeString}},
		{entry: "dueAt: Date ?", want: model.Property{Name: "dueAt", Type: model.TypeDate, Optional: true}},
		{entry: "price:number?", want: model.Property{Name: "price", Type: model.TypeNumber, Optional: true}},
		{entry: "done", wantErr: "separator"},
		{entry: ":string", wantErr: "name is required"},
		{entry: "count:integer", wantErr: "unknown type"},
		{entry: "flag:", wantErr: "unknown type"},
	}

	for _, tc := range cases {
		got, err := ParsePropLine(tc.entry)
		if tc.wantErr != "" {
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("ParsePropLine(%q) error = %v, want mention of %q", tc.entry, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePropLine(%q): %v", tc.entry, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("ParsePropLine(%q) mismatch (-want +got):\n%s", tc.entry, diff)
		}
	}
}
