package model

// SampleStatus tells how far a sample has travelled through the pipeline.
type SampleStatus string

const (
	// StatusNoPrompt means the bug was unsupported by the prompt strategy.
	StatusNoPrompt SampleStatus = "no_prompt"
	// StatusPrompted means a prompt exists but nothing was generated yet.
	StatusPrompted SampleStatus = "prompted"
	// StatusGenerated means candidates exist but were not evaluated.
	StatusGenerated SampleStatus = "generated"
	// StatusEvaluated means every candidate carries an evaluation.
	StatusEvaluated SampleStatus = "evaluated"
)

// Sample is the persisted unit of work, one JSONL line per bug. Nullable fields are
// pointers so that "no prompt" and "empty prompt" stay distinguishable.
type Sample struct {
	Identifier     string  `json:"identifier"`
	BuggyCode      *string `json:"buggy_code"`
	FixedCode      *string `json:"fixed_code"`
	PromptStrategy string  `json:"prompt_strategy"`
	Prompt         *string `json:"prompt"`
	GroundTruth    string  `json:"ground_truth"`

	// Generation holds one entry per candidate; an entry is nil when no code could be
	// extracted from the model response. A nil slice means generation has not run.
	Generation []*string          `json:"generation"`
	Evaluation []EvaluationResult `json:"evaluation,omitempty"`
}

// Status derives the pipeline stage from which fields are set.
func (s Sample) Status() SampleStatus {
	switch {
	case s.Prompt == nil:
		return StatusNoPrompt
	case s.Generation == nil:
		return StatusPrompted
	case s.Evaluation == nil:
		return StatusGenerated
	default:
		return StatusEvaluated
	}
}

// Stage is the terminal state reached while evaluating one candidate.
type Stage string

const (
	// StageNoGeneration means there was no candidate to evaluate.
	StageNoGeneration Stage = "no_generation"
	// StageCheckoutFailed means the working copy could not be materialised.
	StageCheckoutFailed Stage = "checkout_failed"
	// StageApplyFailed means the buggy region was empty or not found in the checked-out file.
	StageApplyFailed Stage = "apply_failed"
	// StageCompileFailed means the patched tree did not compile.
	StageCompileFailed Stage = "compile_failed"
	// StageTestFailed means the patched tree compiled but tests failed.
	StageTestFailed Stage = "test_failed"
	// StageTested means the patched tree compiled and every test passed.
	StageTested Stage = "tested"
)

// EvaluationResult is the verdict for one candidate. It is never merged with others.
type EvaluationResult struct {
	Generation *string `json:"generation"`
	ExactMatch bool    `json:"exact_match"`
	ASTMatch   bool    `json:"ast_match"`
	Compile    *bool   `json:"compile"`
	Test       *bool   `json:"test"`
	Stage      Stage   `json:"stage"`
}

// IsCompilable reports a compile step that passed. A benchmark without a compile step
// counts as compilable once its tests ran.
func (r EvaluationResult) IsCompilable() bool {
	if r.Compile == nil {
		return r.Test != nil
	}

	return *r.Compile
}

// IsPlausible reports a candidate that compiled and passed the test suite.
func (r EvaluationResult) IsPlausible() bool {
	return r.IsCompilable() && r.Test != nil && *r.Test
}

// MaskedPrompt is what a prompt strategy produces for one bug. Target is the text the
// model is expected to produce in place of the sentinels, which are listed in order of
// appearance.
type MaskedPrompt struct {
	BuggyCode string
	FixedCode string
	Prompt    string
	Target    string
	Sentinels []string
}

// Statistics summarises an evaluated run.
type Statistics struct {
	Benchmark             string             `json:"benchmark"`
	PromptStrategy        string             `json:"prompt_strategy"`
	NumBugs               int                `json:"num_bugs"`
	NumBugsWithPrompt     int                `json:"num_bugs_with_prompt"`
	NumBugsWithGeneration int                `json:"num_bugs_with_generation"`
	NumBugsWithExactMatch int                `json:"num_bugs_with_exact_match"`
	NumBugsWithASTMatch   int                `json:"num_bugs_with_ast_match"`
	NumBugsCompilable     int                `json:"num_bugs_compilable"`
	NumBugsPlausible      int                `json:"num_bugs_plausible"`
	NumCandidates         int                `json:"num_candidates"`
	PassAtK               map[string]float64 `json:"pass_at_k"`
}
