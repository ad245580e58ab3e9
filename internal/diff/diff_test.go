package diff

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleChunkDiff = `diff --git a/src/main/java/Foo.java b/src/main/java/Foo.java
index 1111111..2222222 100644
--- a/src/main/java/Foo.java
+++ b/src/main/java/Foo.java
@@ -10,6 +10,7 @@ public class Foo {
     public int f(int x) {
         int y = x;
-        return y;
+        y = y + 1;
+        return y;
     }
     // helpers
     public int g() {
`

const twoRunDiff = `--- a/Foo.java
+++ b/Foo.java
@@ -1,6 +1,8 @@
 void f() {
+  int a = 0;
   int b = 1;
   int c = 2;
   int d = 3;
+  int e = 4;
   return;
 }
`

const twoFileDiff = `--- a/A.java
+++ b/A.java
@@ -1,2 +1,2 @@
 class A {
-  int x;
+  int y;
--- a/B.java
+++ b/B.java
@@ -1,2 +1,2 @@
 class B {
-  int x;
+  int y;
`

func TestParse_SingleFile(t *testing.T) {
	d, err := Parse(singleChunkDiff)
	require.NoError(t, err)

	file, err := d.Single()
	require.NoError(t, err)

	assert.Equal(t, "src/main/java/Foo.java", file.SourceFilename())
	assert.Equal(t, "src/main/java/Foo.java", file.TargetFilename())
	require.Len(t, file.Hunks, 1)

	hunk := file.Hunks[0]
	assert.Equal(t, 10, hunk.SourceStart)
	assert.Equal(t, 10, hunk.TargetStart)
	require.Len(t, hunk.Lines, 8)

	assert.Equal(t, Removed, hunk.Lines[2].Kind)
	assert.Equal(t, "        return y;", hunk.Lines[2].Value)
	assert.Equal(t, 12, hunk.Lines[2].SourceLine)
	assert.Equal(t, 0, hunk.Lines[2].TargetLine)

	assert.Equal(t, []int{12}, file.ChangedSourceLines())
	assert.Equal(t, []int{12, 13}, file.ChangedTargetLines())
}

func TestParse_LineNumbersMonotonic(t *testing.T) {
	d, err := Parse(twoRunDiff)
	require.NoError(t, err)

	lastSource, lastTarget := 0, 0

	for _, line := range d.Files[0].Hunks[0].Lines {
		if line.SourceLine != 0 {
			assert.Greater(t, line.SourceLine, lastSource)
			lastSource = line.SourceLine
		}

		if line.TargetLine != 0 {
			assert.Greater(t, line.TargetLine, lastTarget)
			lastTarget = line.TargetLine
		}
	}
}

func TestParse_SidesReconstruct(t *testing.T) {
	d, err := Parse(singleChunkDiff)
	require.NoError(t, err)

	file := d.Files[0]
	assert.Contains(t, file.SourceText(), "        return y;\n    }\n")
	assert.NotContains(t, file.SourceText(), "y = y + 1;")
	assert.Contains(t, file.TargetText(), "        y = y + 1;\n        return y;\n")
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no hunk header", "--- a/A.java\n+++ b/A.java\n just text\n"},
		{"plain prose", "this is not a diff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedDiff))

			var malformed *MalformedDiffError
			assert.True(t, errors.As(err, &malformed))
		})
	}
}

func TestDiff_SingleRejectsMultiFile(t *testing.T) {
	d, err := Parse(twoFileDiff)
	require.NoError(t, err)
	require.Len(t, d.Files, 2)

	_, err = d.Single()
	require.ErrorIs(t, err, ErrMultiFile)
	assert.False(t, d.IsSingleHunk())
	assert.False(t, d.IsSingleContiguousChunk())
}

func TestChangedLines_FallBackToMedianContext(t *testing.T) {
	text := "--- a/A.java\n+++ b/A.java\n@@ -1,3 +1,4 @@\n a\n b\n+c\n d\n"

	d, err := Parse(text)
	require.NoError(t, err)

	file := d.Files[0]
	assert.Equal(t, []int{3}, file.ChangedTargetLines())
	// Context source lines are 1, 2, 3: the median is 2.
	assert.Equal(t, []int{2}, file.ChangedSourceLines())
}

func TestIsSingleContiguousChunk(t *testing.T) {
	single, err := Parse(singleChunkDiff)
	require.NoError(t, err)
	assert.True(t, single.IsSingleHunk())
	assert.True(t, single.IsSingleContiguousChunk())

	two, err := Parse(twoRunDiff)
	require.NoError(t, err)
	assert.True(t, two.IsSingleHunk())
	assert.False(t, two.IsSingleContiguousChunk())
}

func TestHunksBySign(t *testing.T) {
	added := HunksBySign(twoRunDiff, '+')
	require.Len(t, added, 2)
	assert.Equal(t, []string{"  int a = 0;"}, added[0])
	assert.Equal(t, []string{"  int e = 4;"}, added[1])

	removed := HunksBySign(singleChunkDiff, '-')
	require.Len(t, removed, 1)
	assert.Equal(t, []string{"        return y;"}, removed[0])

	assert.Empty(t, HunksBySign(twoRunDiff, '-'))
}

const decrementDiff = `--- a/Loop.java
+++ b/Loop.java
@@ -1,3 +1,3 @@
 while (n > 0) {
---n;
+++n;
 }
--- trailing notes are not part of the hunk
`

func TestLongestHunkBySign(t *testing.T) {
	assert.Equal(t, []string{"  int a = 0;"}, LongestHunkBySign(twoRunDiff, '+'), "first run wins a tie")

	longerSecond := "@@ -1,3 +1,6 @@\n a\n+x\n b\n+y\n+z\n c\n"
	assert.Equal(t, []string{"y", "z"}, LongestHunkBySign(longerSecond, '+'))
	assert.Nil(t, LongestHunkBySign(longerSecond, '-'))
}

func TestHunksBySign_ChangedLinesLookingLikeHeaders(t *testing.T) {
	assert.Equal(t, [][]string{{"--n;"}}, HunksBySign(decrementDiff, '-'))
	assert.Equal(t, [][]string{{"++n;"}}, HunksBySign(decrementDiff, '+'))

	body := Body(strings.Split(decrementDiff, "\n"))
	require.Len(t, body, 5)
	assert.True(t, strings.HasPrefix(body[0], "@@"))
	assert.Equal(t, 1, ChangeRuns(body))
}

func TestBody_MultipleHunks(t *testing.T) {
	body := Body(strings.Split(twoFileDiff, "\n"))

	// Both file headers are dropped, both hunk headers kept.
	require.Len(t, body, 8)
	assert.True(t, strings.HasPrefix(body[0], "@@"))
	assert.True(t, strings.HasPrefix(body[4], "@@"))
	assert.Equal(t, 2, ChangeRuns(body))
}

func TestUnified(t *testing.T) {
	buggy := "void f() {\n  return 1;\n}"
	fixed := "void f() {\n  return 2;\n}"

	lines := Unified(buggy, fixed)
	require.NotEmpty(t, lines)
	assert.Equal(t, "--- buggy\n", lines[0])
	assert.Equal(t, "+++ fixed\n", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "@@"))
	assert.Contains(t, lines, "-  return 1;\n")
	assert.Contains(t, lines, "+  return 2;\n")
	assert.Contains(t, lines, " void f() {\n")
	assert.Equal(t, 1, ChangeRuns(Body(lines)))

	assert.Nil(t, Unified(buggy, buggy))
}

func TestUnified_WholeFunctionRemoval(t *testing.T) {
	lines := Unified("void f() {\n}\n", "")
	require.NotEmpty(t, lines)

	removed := 0

	for _, line := range Body(lines) {
		if IsChange(line) {
			assert.True(t, strings.HasPrefix(line, "-"))
			removed++
		}
	}

	assert.Equal(t, 2, removed)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a\n", "b\n"}, SplitLines("a\nb"))
	assert.Equal(t, []string{"a\n", "b\n"}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"\n"}, SplitLines("\n"))
}

func TestChangedLines_SkipBlankLines(t *testing.T) {
	text := "--- a/A.java\n+++ b/A.java\n@@ -1,5 +1,1 @@\n-  int g() {\n-    return 2;\n-  }\n-\n   int f() {\n"

	d, err := Parse(text)
	require.NoError(t, err)

	file := d.Files[0]
	assert.Equal(t, []int{1, 2, 3}, file.ChangedSourceLines())
	assert.Equal(t, []int{1}, file.ChangedTargetLines())
}
