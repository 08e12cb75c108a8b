package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteKey(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"home.tsx", "home"},
		{"comments/index.tsx", "comments/index"},
		{`comments\index.tsx`, "comments/index"},
		{"api/users.$id.ts", "api/users.$id"},
		{"tsx/page.tsx", "tsx/page"},
		{"page.tsx.tsx", "page.tsx"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RouteKey(tt.rel), "RouteKey(%q)", tt.rel)
	}
}

func TestImportPath(t *testing.T) {
	assert.Equal(t, "./routes/home.tsx", ImportPath("home.tsx"))
	assert.Equal(t, "./routes/comments/index.tsx", ImportPath(`comments\index.tsx`))
}

func TestIsCandidate(t *testing.T) {
	for _, p := range []string{"a.ts", "a.tsx", "a.js", "a/b.jsx"} {
		assert.True(t, IsCandidate(p), p)
	}
	for _, p := range []string{"a.css", "a.d", "README.md", "a.TSX", "ts"} {
		assert.False(t, IsCandidate(p), p)
	}
}
