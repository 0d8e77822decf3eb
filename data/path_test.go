package data

import "testing"

func TestFoldPath(t *testing.T) {
	if FoldPath("/Root/Home/Page") != "/root/home/page" {
		t.Errorf("unexpected fold: %q", FoldPath("/Root/Home/Page"))
	}

	if FoldPath("/root") != "/root" {
		t.Error("already folded path changed")
	}
}

func TestEqualPath(t *testing.T) {
	if !EqualPath("/Root/A", "/root/a") {
		t.Error("case-insensitive match failed")
	}

	if EqualPath("/root/a", "/root/b") {
		t.Error("different paths reported equal")
	}
}

func TestHasPathPrefix(t *testing.T) {
	tests := []struct {
		path   string
		prefix string
		want   bool
	}{
		{"/root/a/b", "/root/a", true},
		{"/root/a", "/root/a", true},
		{"/Root/A/b", "/root/a", true},
		{"/root/abc", "/root/a", false},
		{"/root", "/root/a", false},
		{"/root/a", "/root/a/", true},
		{"/root/a", "", true},
		{"/root/a", "/", true},
	}

	for _, tt := range tests {
		if got := HasPathPrefix(tt.path, tt.prefix); got != tt.want {
			t.Errorf("HasPathPrefix(%q, %q) = %v, want %v", tt.path, tt.prefix, got, tt.want)
		}
	}
}

func TestReplacePathPrefix(t *testing.T) {
	tests := []struct {
		path string
		old  string
		new  string
		want string
	}{
		{"/root/a/b", "/root/a", "/root/a2", "/root/a2/b"},
		{"/root/a/b/c", "/root/a", "/root/a2", "/root/a2/b/c"},
		{"/root/a", "/root/a", "/root/a2", "/root/a2"},
		// A trailing separator on either prefix never doubles up
		{"/root/a/b", "/root/a/", "/root/a2", "/root/a2/b"},
		{"/root/a/b", "/root/a", "/root/a2/", "/root/a2/b"},
		// Prefix match ignores case, remainder keeps its casing
		{"/Root/A/Sub", "/root/a", "/root/a2", "/root/a2/Sub"},
		// Paths outside the prefix stay untouched
		{"/root/abc", "/root/a", "/root/a2", "/root/abc"},
		{"/other/a/b", "/root/a", "/root/a2", "/other/a/b"},
	}

	for _, tt := range tests {
		if got := ReplacePathPrefix(tt.path, tt.old, tt.new); got != tt.want {
			t.Errorf("ReplacePathPrefix(%q, %q, %q) = %q, want %q", tt.path, tt.old, tt.new, got, tt.want)
		}
	}
}
