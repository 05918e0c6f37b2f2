package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "covquest.dev/pkg/covquest/internal/model"
)

func TestJacocoNaming_Locate(t *testing.T) {
	naming := NewJacocoNaming(DefaultNamingOptions())
	root := m.Path("/ws/target/site/jacoco")

	tests := []struct {
		name   string
		source m.Path
		want   m.ReportLocation
		ok     bool
	}{
		{
			name:   "maven layout",
			source: "src/main/java/com/acme/billing/Invoice.java",
			want: m.ReportLocation{
				Package: "com.acme.billing",
				Class:   "Invoice",
				Path:    m.Path(filepath.Join("/ws/target/site/jacoco", "com.acme.billing", "Invoice.java.html")),
			},
			ok: true,
		},
		{
			name:   "module prefix is skipped",
			source: "services/api/src/main/kotlin/com/acme/Api.kt",
			want: m.ReportLocation{
				Package: "com.acme",
				Class:   "Api",
				Path:    m.Path(filepath.Join("/ws/target/site/jacoco", "com.acme", "Api.kt.html")),
			},
			ok: true,
		},
		{
			name:   "default package",
			source: "src/main/java/App.java",
			want: m.ReportLocation{
				Package: DefaultPackage,
				Class:   "App",
				Path:    m.Path(filepath.Join("/ws/target/site/jacoco", "default", "App.java.html")),
			},
			ok: true,
		},
		{
			name:   "class name stops at the first dot",
			source: "src/main/java/x/Foo.gen.java",
			want: m.ReportLocation{
				Package: "x",
				Class:   "Foo",
				Path:    m.Path(filepath.Join("/ws/target/site/jacoco", "x", "Foo.gen.java.html")),
			},
			ok: true,
		},
		{
			name:   "no source root keeps every directory",
			source: "lib/util/Strings.java",
			want: m.ReportLocation{
				Package: "lib.util",
				Class:   "Strings",
				Path:    m.Path(filepath.Join("/ws/target/site/jacoco", "lib.util", "Strings.java.html")),
			},
			ok: true,
		},
		{name: "unsupported extension", source: "README.md"},
		{name: "hidden file", source: "src/main/java/.java"},
		{name: "empty path", source: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := naming.Locate(root, tt.source)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNestedNaming_Locate(t *testing.T) {
	naming := NewNestedNaming(DefaultNamingOptions())

	got, ok := naming.Locate("/r", "src/main/java/com/acme/Foo.java")
	require.True(t, ok)
	assert.Equal(t, m.Path(filepath.Join("/r", "com", "acme", "Foo.java.html")), got.Path)
	assert.Equal(t, "com.acme", got.Package)

	got, ok = naming.Locate("/r", "src/main/java/Foo.java")
	require.True(t, ok)
	assert.Equal(t, m.Path(filepath.Join("/r", "default", "Foo.java.html")), got.Path)
}

func TestNaming_CustomOptions(t *testing.T) {
	naming := NewJacocoNaming(NamingOptions{SourceRoots: []string{"lib"}, Suffix: ".xhtml"})

	got, ok := naming.Locate("/r", "lib/a/b/Thing.ext")
	require.True(t, ok)
	assert.Equal(t, "a.b", got.Package)
	assert.Equal(t, "Thing", got.Class)
	assert.Equal(t, m.Path(filepath.Join("/r", "a.b", "Thing.ext.xhtml")), got.Path)
}

func TestNamingByName(t *testing.T) {
	for _, layout := range []string{"", LayoutJacoco, LayoutNested} {
		naming, err := NamingByName(layout, DefaultNamingOptions())
		require.NoError(t, err)
		assert.NotEmpty(t, naming.Name())
	}

	_, err := NamingByName("cobertura", DefaultNamingOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report layout")
}
