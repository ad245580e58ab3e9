package domain

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/adapter"
	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/source"
)

// treeBenchmark checks out fixed file trees and reports scripted compile and test results.
type treeBenchmark struct {
	t           *testing.T
	bugs        []m.Bug
	buggy       map[string]string
	fixed       map[string]string
	checkoutErr error
	compile     m.CompileResult
	test        m.TestResult
	onTest      func(path m.Path)
	checkouts   atomic.Int32
}

func (b *treeBenchmark) Name() string { return "fake" }

func (b *treeBenchmark) Bugs(context.Context) ([]m.Bug, error) { return b.bugs, nil }

func (b *treeBenchmark) Checkout(_ context.Context, _ m.Bug, path m.Path, fixed bool) error {
	b.checkouts.Add(1)

	if b.checkoutErr != nil {
		return b.checkoutErr
	}

	files := b.buggy
	if fixed {
		files = b.fixed
	}

	writeTree(b.t, string(path), files)

	return nil
}

func (b *treeBenchmark) Compile(context.Context, m.Bug, m.Path) m.CompileResult { return b.compile }

func (b *treeBenchmark) Test(_ context.Context, _ m.Bug, path m.Path) m.TestResult {
	if b.onTest != nil {
		b.onTest(path)
	}

	return b.test
}

func newExtractor(t *testing.T, benchmark adapter.BenchmarkAdapter) FunctionExtractor {
	t.Helper()

	return NewFunctionExtractor(benchmark, adapter.NewLocalWorkspace(t.TempDir()), source.NewLocator())
}

func TestFunctionExtractor_Extract(t *testing.T) {
	benchmark := &treeBenchmark{
		t:     t,
		buggy: map[string]string{"src/GCD.java": gcdBuggyFile},
		fixed: map[string]string{"src/GCD.java": gcdFixedFile},
	}

	pair, err := newExtractor(t, benchmark).Extract(context.Background(), gcdBug())
	require.NoError(t, err)

	assert.Equal(t, gcdPair, pair)
	assert.Equal(t, int32(2), benchmark.checkouts.Load())
}

func TestFunctionExtractor_InvertedGroundTruth(t *testing.T) {
	benchmark := &treeBenchmark{
		t:     t,
		buggy: map[string]string{"src/GCD.java": gcdBuggyFile},
		fixed: map[string]string{"src/GCD.java": gcdFixedFile},
	}

	bug := gcdBug()
	bug.GroundTruthInverted = true
	bug.GroundTruth = `--- a/src/GCD.java
+++ b/src/GCD.java
@@ -4,4 +4,4 @@
             return a;
         }
-        return gcd(b, a % b);
+        return gcd(a % b, b);
     }
`

	pair, err := newExtractor(t, benchmark).Extract(context.Background(), bug)
	require.NoError(t, err)
	assert.Equal(t, gcdPair, pair)
}

func TestFunctionExtractor_JavadocAndBodyEdited(t *testing.T) {
	benchmark := &treeBenchmark{
		t: t,
		buggy: map[string]string{"A.java": "public class A {\n" +
			"    /**\n" +
			"     * Returns x.\n" +
			"     */\n" +
			"    int f(int x) {\n" +
			"        return x;\n" +
			"    }\n" +
			"}\n"},
		fixed: map[string]string{"A.java": "public class A {\n" +
			"    /**\n" +
			"     * Returns x plus one.\n" +
			"     */\n" +
			"    int f(int x) {\n" +
			"        return x + 1;\n" +
			"    }\n" +
			"}\n"},
	}

	bug := m.Bug{
		Identifier: "P-1",
		GroundTruth: `--- a/A.java
+++ b/A.java
@@ -1,8 +1,8 @@
 public class A {
     /**
-     * Returns x.
+     * Returns x plus one.
      */
     int f(int x) {
-        return x;
+        return x + 1;
     }
 }
`,
	}

	pair, err := newExtractor(t, benchmark).Extract(context.Background(), bug)
	require.NoError(t, err)

	assert.Equal(t, "    /**\n     * Returns x.\n     */\n    int f(int x) {\n        return x;\n    }", pair.BuggyCode)
	assert.Equal(t, "    /**\n     * Returns x plus one.\n     */\n    int f(int x) {\n        return x + 1;\n    }", pair.FixedCode)
}

func TestFunctionExtractor_WholeFunctionRemoved(t *testing.T) {
	benchmark := &treeBenchmark{
		t: t,
		buggy: map[string]string{"Util.java": "public class Util {\n" +
			"    int helper() {\n" +
			"        return 2;\n" +
			"    }\n" +
			"\n" +
			"    int one() {\n" +
			"        return 1;\n" +
			"    }\n" +
			"}\n"},
		fixed: map[string]string{"Util.java": "public class Util {\n" +
			"    int one() {\n" +
			"        return 1;\n" +
			"    }\n" +
			"}\n"},
	}

	bug := m.Bug{
		Identifier: "UTIL",
		GroundTruth: `--- a/Util.java
+++ b/Util.java
@@ -1,6 +1,2 @@
 public class Util {
-    int helper() {
-        return 2;
-    }
-
     int one() {
`,
	}

	pair, err := newExtractor(t, benchmark).Extract(context.Background(), bug)
	require.NoError(t, err)

	assert.Equal(t, "    int helper() {\n        return 2;\n    }", pair.BuggyCode)
	assert.Empty(t, pair.FixedCode)
}

func TestFunctionExtractor_Unsupported(t *testing.T) {
	tests := []struct {
		name  string
		bug   m.Bug
		buggy map[string]string
		fixed map[string]string
	}{
		{
			name: "multi-file ground truth",
			bug: m.Bug{Identifier: "MULTI", GroundTruth: gcdGroundTruth + `--- a/src/Other.java
+++ b/src/Other.java
@@ -1,1 +1,1 @@
-a
+b
`},
		},
		{
			name: "unsupported language",
			bug: m.Bug{Identifier: "JS", GroundTruth: `--- a/gcd.js
+++ b/gcd.js
@@ -1,1 +1,1 @@
-return gcd(a % b, b);
+return gcd(b, a % b);
`},
			buggy: map[string]string{"gcd.js": "return gcd(a % b, b);\n"},
			fixed: map[string]string{"gcd.js": "return gcd(b, a % b);\n"},
		},
		{
			name:  "change outside any function",
			bug:   m.Bug{Identifier: "FIELD", GroundTruth: "--- a/A.java\n+++ b/A.java\n@@ -1,3 +1,3 @@\n class A {\n-    int x = 1;\n+    int x = 2;\n }\n"},
			buggy: map[string]string{"A.java": "class A {\n    int x = 1;\n}\n"},
			fixed: map[string]string{"A.java": "class A {\n    int x = 2;\n}\n"},
		},
		{
			name:  "trees do not reproduce the ground truth",
			bug:   gcdBug(),
			buggy: map[string]string{"src/GCD.java": gcdBuggyFile},
			fixed: map[string]string{"src/GCD.java": gcdBuggyFile},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			benchmark := &treeBenchmark{t: t, buggy: tt.buggy, fixed: tt.fixed}

			_, err := newExtractor(t, benchmark).Extract(context.Background(), tt.bug)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedBug)
		})
	}
}

func TestFunctionExtractor_CheckoutFailure(t *testing.T) {
	checkoutErr := errors.New("defects4j exploded")
	benchmark := &treeBenchmark{t: t, checkoutErr: checkoutErr}

	_, err := newExtractor(t, benchmark).Extract(context.Background(), gcdBug())
	require.ErrorIs(t, err, checkoutErr)
	assert.NotErrorIs(t, err, ErrUnsupportedBug)
}

func TestFunctionExtractor_ExtractWithTests(t *testing.T) {
	testFile := "package org.example;\n\n" +
		"public class GCDTest {\n" +
		"    @Test\n" +
		"    public void testGcd() {\n" +
		"        assertEquals(2, new GCD().gcd(4, 6));\n" +
		"    }\n" +
		"}\n"

	benchmark := &treeBenchmark{
		t: t,
		buggy: map[string]string{
			"src/GCD.java":                       gcdBuggyFile,
			"test/org/example/GCDTest.java":      testFile,
			"test/org/example/UnrelatedTest.txt": "noise",
		},
		fixed: map[string]string{"src/GCD.java": gcdFixedFile},
	}

	bug := gcdBug()
	bug.FailingTests = map[string]string{
		"org.example.GCDTest::testGcd":  "expected:<2> but was:<0>",
		"org.example.MissingTest::test": "boom",
	}

	pair, tests, err := newExtractor(t, benchmark).ExtractWithTests(context.Background(), bug)
	require.NoError(t, err)
	assert.Equal(t, gcdPair, pair)

	require.Len(t, tests, 2)
	assert.Equal(t, "org.example.GCDTest::testGcd", tests[0].ID)
	assert.Equal(t, "expected:<2> but was:<0>", tests[0].Cause)
	assert.Contains(t, tests[0].Source, "public void testGcd()")
	assert.Contains(t, tests[0].Source, "assertEquals(2, new GCD().gcd(4, 6));")

	assert.Equal(t, "org.example.MissingTest::test", tests[1].ID)
	assert.Empty(t, tests[1].Source)
}

func TestDiffEquivalent(t *testing.T) {
	bug := gcdBug()

	d, err := bug.Diff()
	require.NoError(t, err)

	file, err := d.Single()
	require.NoError(t, err)

	assert.True(t, diffEquivalent(file, false, gcdPair.BuggyCode, gcdPair.FixedCode))
	assert.False(t, diffEquivalent(file, true, gcdPair.BuggyCode, gcdPair.FixedCode))
	assert.True(t, diffEquivalent(file, true, gcdPair.FixedCode, gcdPair.BuggyCode))
	assert.False(t, diffEquivalent(file, false, gcdPair.BuggyCode, gcdPair.BuggyCode))
	assert.False(t, diffEquivalent(file, false, gcdPair.BuggyCode, twoRunPair.FixedCode))
}
