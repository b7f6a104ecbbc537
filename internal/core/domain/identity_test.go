package domain_test

import (
	"testing"

	"github.com/cargotags/cargotags/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSourceIdentity_CacheKey(t *testing.T) {
	tests := []struct {
		name string
		a    domain.SourceIdentity
		b    domain.SourceIdentity
		same bool
	}{
		{
			name: "identical registry crates share a key",
			a:    domain.RegistryIdentity("serde", "1.0.200"),
			b:    domain.RegistryIdentity("serde", "1.0.200"),
			same: true,
		},
		{
			name: "different versions of one crate differ",
			a:    domain.RegistryIdentity("serde", "1.0.200"),
			b:    domain.RegistryIdentity("serde", "1.0.201"),
			same: false,
		},
		{
			name: "registry and git never collide",
			a:    domain.RegistryIdentity("tokio", "1.0.0"),
			b:    domain.GitIdentity("tokio", "https://github.com/tokio-rs/tokio", "1.0.0"),
			same: false,
		},
		{
			name: "same git repo at different revisions differs",
			a:    domain.GitIdentity("tokio", "https://github.com/tokio-rs/tokio", "aaaaaaaaaaaaaaaaaaaa"),
			b:    domain.GitIdentity("tokio", "https://github.com/tokio-rs/tokio", "bbbbbbbbbbbbbbbbbbbb"),
			same: false,
		},
		{
			name: "same revision from different repositories differs",
			a:    domain.GitIdentity("fork", "https://github.com/a/fork", "deadbeef"),
			b:    domain.GitIdentity("fork", "https://github.com/b/fork", "deadbeef"),
			same: false,
		},
		{
			name: "path crates differ by directory",
			a:    domain.PathIdentity("local", "/home/a/local"),
			b:    domain.PathIdentity("local", "/home/b/local"),
			same: false,
		},
		{
			name: "path key is stable under path cleaning",
			a:    domain.PathIdentity("local", "/home/a/local"),
			b:    domain.PathIdentity("local", "/home/a//local/"),
			same: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.same {
				assert.Equal(t, tt.a.CacheKey(), tt.b.CacheKey())
			} else {
				assert.NotEqual(t, tt.a.CacheKey(), tt.b.CacheKey())
			}
		})
	}
}

func TestSourceIdentity_CacheKey_Shape(t *testing.T) {
	assert.Equal(t, "registry/serde@1.0.200", domain.RegistryIdentity("serde", "1.0.200").CacheKey())

	gitKey := domain.GitIdentity("tokio", "https://github.com/tokio-rs/tokio", "0123456789abcdef0123").CacheKey()
	// Long revisions are truncated but disambiguated by the repo#rev hash.
	assert.Contains(t, gitKey, "git/tokio@0123456789abcdef-")
}

func TestSourceIdentity_String(t *testing.T) {
	assert.Equal(t, "serde 1.0.200", domain.RegistryIdentity("serde", "1.0.200").String())
	assert.Equal(t, "tokio (https://g.test/t#abc)", domain.GitIdentity("tokio", "https://g.test/t", "abc").String())
	assert.Equal(t, "local (/src/local)", domain.PathIdentity("local", "/src/local").String())
}
