package model

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fooDiff = `--- a/src/Foo.java
+++ b/src/FooFixed.java
@@ -1,3 +1,3 @@
 class Foo {
-  int x = 1;
+  int x = 2;
 }
`

func TestBug_FilePaths(t *testing.T) {
	tests := []struct {
		name     string
		inverted bool
		buggy    string
		fixed    string
	}{
		{"natural", false, "src/Foo.java", "src/FooFixed.java"},
		{"inverted", true, "src/FooFixed.java", "src/Foo.java"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bug := Bug{Identifier: "Foo-1", GroundTruth: fooDiff, GroundTruthInverted: tt.inverted}

			buggy, err := bug.BuggyFilePath("/work")
			require.NoError(t, err)
			assert.Equal(t, Path(filepath.Join("/work", tt.buggy)), buggy)

			fixed, err := bug.FixedFilePath("/work")
			require.NoError(t, err)
			assert.Equal(t, Path(filepath.Join("/work", tt.fixed)), fixed)
		})
	}
}

func TestBug_FilePathMalformed(t *testing.T) {
	bug := Bug{Identifier: "Broken-1", GroundTruth: "not a diff"}

	_, err := bug.BuggyFile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken-1")
}

func TestCompileResult_IsPassing(t *testing.T) {
	assert.True(t, CompileResult{}.IsPassing())
	assert.True(t, CompileResult{Passing: Bool(true)}.IsPassing())
	assert.False(t, CompileResult{Passing: Bool(false)}.IsPassing())
}

func TestSample_Status(t *testing.T) {
	sample := Sample{Identifier: "Foo-1"}
	assert.Equal(t, StatusNoPrompt, sample.Status())

	sample.Prompt = String("fix me")
	assert.Equal(t, StatusPrompted, sample.Status())

	sample.Generation = []*string{nil}
	assert.Equal(t, StatusGenerated, sample.Status())

	sample.Evaluation = []EvaluationResult{{Stage: StageNoGeneration}}
	assert.Equal(t, StatusEvaluated, sample.Status())
}

func TestSample_JSONNullFields(t *testing.T) {
	raw, err := json.Marshal(Sample{Identifier: "Foo-1", PromptStrategy: "fim"})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Contains(t, fields, "prompt")
	assert.Nil(t, fields["prompt"])
	assert.Nil(t, fields["generation"])
	assert.NotContains(t, fields, "evaluation")
}

func TestEvaluationResult_Classification(t *testing.T) {
	assert.False(t, EvaluationResult{}.IsCompilable())
	assert.False(t, EvaluationResult{Compile: Bool(true), Test: Bool(false)}.IsPlausible())
	assert.True(t, EvaluationResult{Compile: Bool(true), Test: Bool(true)}.IsPlausible())
	assert.False(t, EvaluationResult{Compile: Bool(false), Test: Bool(true)}.IsPlausible())

	noCompileStep := EvaluationResult{Test: Bool(true), Stage: StageTested}
	assert.True(t, noCompileStep.IsCompilable())
	assert.True(t, noCompileStep.IsPlausible())
}
