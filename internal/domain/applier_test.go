package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/adapter"
	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

const gcdGroundTruth = `--- a/src/GCD.java
+++ b/src/GCD.java
@@ -4,4 +4,4 @@
             return a;
         }
-        return gcd(a % b, b);
+        return gcd(b, a % b);
     }
`

const gcdBuggyFile = "public class GCD {\n" +
	"    int gcd(int a, int b) {\n" +
	"        if (b == 0) {\n" +
	"            return a;\n" +
	"        }\n" +
	"        return gcd(a % b, b);\n" +
	"    }\n" +
	"}\n"

const gcdFixedFile = "public class GCD {\n" +
	"    int gcd(int a, int b) {\n" +
	"        if (b == 0) {\n" +
	"            return a;\n" +
	"        }\n" +
	"        return gcd(b, a % b);\n" +
	"    }\n" +
	"}\n"

func gcdBug() m.Bug {
	return m.Bug{
		Identifier:   "GCD",
		Benchmark:    "quixbugs",
		GroundTruth:  gcdGroundTruth,
		FailingTests: map[string]string{"GCDTest::testGcd": "expected:<2> but was:<0>"},
	}
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func TestPatchApplier_Apply(t *testing.T) {
	workDir := t.TempDir()
	writeTree(t, workDir, map[string]string{"src/GCD.java": gcdBuggyFile})

	applier := NewPatchApplier(adapter.NewLocalWorkspace(""))

	applied, err := applier.Apply(context.Background(), gcdBug(), m.Path(workDir), gcdPair.BuggyCode, gcdPair.FixedCode)
	require.NoError(t, err)
	assert.True(t, applied)

	content, err := os.ReadFile(filepath.Join(workDir, "src", "GCD.java"))
	require.NoError(t, err)
	assert.Equal(t, gcdFixedFile, string(content))
}

func TestPatchApplier_RegionNotFound(t *testing.T) {
	workDir := t.TempDir()
	writeTree(t, workDir, map[string]string{"src/GCD.java": gcdFixedFile})

	applier := NewPatchApplier(adapter.NewLocalWorkspace(""))

	applied, err := applier.Apply(context.Background(), gcdBug(), m.Path(workDir), gcdPair.BuggyCode, "whatever")
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = applier.Apply(context.Background(), gcdBug(), m.Path(workDir), "", "whatever")
	require.NoError(t, err)
	assert.False(t, applied)

	content, err := os.ReadFile(filepath.Join(workDir, "src", "GCD.java"))
	require.NoError(t, err)
	assert.Equal(t, gcdFixedFile, string(content), "file must be left untouched")
}

func TestPatchApplier_MissingFile(t *testing.T) {
	applier := NewPatchApplier(adapter.NewLocalWorkspace(""))

	applied, err := applier.Apply(context.Background(), gcdBug(), m.Path(t.TempDir()), gcdPair.BuggyCode, gcdPair.FixedCode)
	require.Error(t, err)
	assert.False(t, applied)
}

func TestPatchApplier_KeepsLatin1(t *testing.T) {
	workDir := t.TempDir()

	// "caf\xe9" is not valid UTF-8.
	latin1 := "// caf\xe9\n" + gcdBuggyFile
	writeTree(t, workDir, map[string]string{"src/GCD.java": latin1})

	applier := NewPatchApplier(adapter.NewLocalWorkspace(""))

	applied, err := applier.Apply(context.Background(), gcdBug(), m.Path(workDir), gcdPair.BuggyCode, gcdPair.FixedCode)
	require.NoError(t, err)
	require.True(t, applied)

	content, err := os.ReadFile(filepath.Join(workDir, "src", "GCD.java"))
	require.NoError(t, err)
	assert.Equal(t, "// caf\xe9\n"+gcdFixedFile, string(content))
}
