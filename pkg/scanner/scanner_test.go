package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates the given files under dir with placeholder content
func writeTree(t *testing.T, dir string, paths []string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(dir, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("const x = 1;\n"), 0644))
	}
}

func TestScanner_Scan(t *testing.T) {
	tests := []struct {
		name string
		tree []string
		opts Options
		want []string
	}{
		{
			name: "extension_filter",
			tree: []string{"a.ts", "b.tsx", "c.go", "d.md", "sub/e.js"},
			opts: Options{
				Extensions: []string{".ts", ".tsx", ".js", ".jsx"},
			},
			want: []string{"a.ts", "b.tsx", "sub/e.js"},
		},
		{
			name: "excluded_directories_pruned",
			tree: []string{
				"src/a.ts",
				"node_modules/pkg/index.js",
				".next/cache/chunk.js",
				"dist/out.js",
				"build/out.ts",
			},
			opts: Options{
				Extensions:  []string{".ts", ".js"},
				ExcludeDirs: []string{"node_modules", ".next", "dist", "build"},
			},
			want: []string{"src/a.ts"},
		},
		{
			name: "exclude_substring_applies_anywhere_in_path",
			tree: []string{"src/a.ts", "packages/web/node_modules/x/y.ts"},
			opts: Options{
				Extensions:  []string{".ts"},
				ExcludeDirs: []string{"node_modules"},
			},
			want: []string{"src/a.ts"},
		},
		{
			name: "ignore_globs",
			tree: []string{"src/a.ts", "src/a.test.ts", "src/gen/schema.ts"},
			opts: Options{
				Extensions:     []string{".ts"},
				IgnorePatterns: []string{"**/*.test.ts", "src/gen/**"},
			},
			want: []string{"src/a.ts"},
		},
		{
			name: "sorted_output",
			tree: []string{"z.ts", "m/a.ts", "a.ts"},
			opts: Options{
				Extensions: []string{".ts"},
			},
			want: []string{"a.ts", "m/a.ts", "z.ts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeTree(t, dir, tt.tree)

			tt.opts.Root = dir
			s, err := New(tt.opts)
			require.NoError(t, err)

			got, err := s.Scan(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantError string
	}{
		{
			name:      "missing_root",
			opts:      Options{Extensions: []string{".ts"}},
			wantError: "root directory is required",
		},
		{
			name:      "missing_extensions",
			opts:      Options{Root: "."},
			wantError: "at least one extension is required",
		},
		{
			name:      "extension_without_dot",
			opts:      Options{Root: ".", Extensions: []string{"ts"}},
			wantError: "must start with a dot",
		},
		{
			name: "invalid_ignore_pattern",
			opts: Options{
				Root:           ".",
				Extensions:     []string{".ts"},
				IgnorePatterns: []string{"[unclosed"},
			},
			wantError: "invalid ignore pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}
