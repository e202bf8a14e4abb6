package model

import "testing"

func TestDerive(t *testing.T) {
	cases := []struct {
		entity string
		want   Names
	}{
		{"User", Names{Entity: "User", Lower: "user", Plural: "users"}},
		{"Category", Names{Entity: "Category", Lower: "category", Plural: "categories"}},
		{"Bus", Names{Entity: "Bus", Lower: "bus", Plural: "buses"}},
		{"Box", Names{Entity: "Box", Lower: "box", Plural: "boxes"}},
		{"Quiz", Names{Entity: "Quiz", Lower: "quiz", Plural: "quizes"}},
		{"BlogPost", Names{Entity: "BlogPost", Lower: "blogPost", Plural: "blogPosts"}},
		{"Person", Names{Entity: "Person", Lower: "person", Plural: "persons"}},
	}

	for _, tc := range cases {
		t.Run(tc.entity, func(t *testing.T) {
			got := Derive(tc.entity)
			if got != tc.want {
				t.Fatalf("Derive(%q) = %+v, want %+v", tc.entity, got, tc.want)
			}
		})
	}
}

func TestPluralizeKeepsInnerCase(t *testing.T) {
	if got := Pluralize("blogPost"); got != "blogPosts" {
		t.Fatalf("Pluralize(blogPost) = %q, want blogPosts", got)
	}
	if got := Pluralize("proxy"); got != "proxies" {
		t.Fatalf("Pluralize(proxy) = %q, want proxies", got)
	}
}

func TestUpperFirst(t *testing.T) {
	cases := map[string]string{
		"user":     "User",
		"blogPost": "BlogPost",
		"User":     "User",
		"":         "",
	}
	for in, want := range cases {
		if got := UpperFirst(in); got != want {
			t.Fatalf("UpperFirst(%q) = %q, want %q", in, got, want)
		}
	}
}
