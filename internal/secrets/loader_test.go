package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSecret(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}
	return path
}

func TestLoadPrecedence(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "from-env")
	t.Setenv("TEST_UNSET_KEY", "")

	cases := []struct {
		name string
		src  Source
		want string
	}{
		{
			name: "file wins",
			src:  Source{File: writeSecret(t, " from-file\n"), Value: "inline", Env: []string{"TEST_GEMINI_KEY"}},
			want: "from-file",
		},
		{
			name: "inline beats env",
			src:  Source{Value: "  inline ", Env: []string{"TEST_GEMINI_KEY"}},
			want: "inline",
		},
		{
			name: "env fallback in order",
			src:  Source{Env: []string{"TEST_UNSET_KEY", "TEST_GEMINI_KEY"}},
			want: "from-env",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Load(tc.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("TEST_UNSET_KEY", "")

	if _, err := Load(Source{Name: "gemini api key", File: writeSecret(t, "\n")}); err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty file error, got %v", err)
	}

	if _, err := Load(Source{File: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatal("expected error for missing file")
	}

	_, err := Load(Source{Name: "gemini api key", Env: []string{"TEST_UNSET_KEY"}})
	if err == nil || !strings.Contains(err.Error(), "TEST_UNSET_KEY") {
		t.Fatalf("expected error naming the checked variables, got %v", err)
	}
}
