// Code generated by ent, DO NOT EDIT.

package ent

import (
	"quizdeck/ent/answerevent"
	"quizdeck/ent/attemptevent"
	"quizdeck/ent/hintevent"
	"quizdeck/ent/llmrequestevent"
	"quizdeck/ent/schema"
	"quizdeck/ent/snapshot"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescAttemptID is the schema descriptor for attempt_id field.
	answereventDescAttemptID := answereventFields[0].Descriptor()
	// answerevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	answerevent.AttemptIDValidator = answereventDescAttemptID.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[1].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[2].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[3].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescCategory is the schema descriptor for category field.
	answereventDescCategory := answereventFields[4].Descriptor()
	// answerevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	answerevent.CategoryValidator = answereventDescCategory.Validators[0].(func(string) error)
	// answereventDescOutcome is the schema descriptor for outcome field.
	answereventDescOutcome := answereventFields[7].Descriptor()
	// answerevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	answerevent.OutcomeValidator = answereventDescOutcome.Validators[0].(func(string) error)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescQuiz is the schema descriptor for quiz field.
	attempteventDescQuiz := attempteventFields[1].Descriptor()
	// attemptevent.QuizValidator is a validator for the "quiz" field. It is called by the builders before save.
	attemptevent.QuizValidator = attempteventDescQuiz.Validators[0].(func(string) error)
	// attempteventDescCorrectAnswers is the schema descriptor for correct_answers field.
	attempteventDescCorrectAnswers := attempteventFields[6].Descriptor()
	// attemptevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	attemptevent.DefaultCorrectAnswers = attempteventDescCorrectAnswers.Default.(int)
	// attempteventDescQuestionsTotal is the schema descriptor for questions_total field.
	attempteventDescQuestionsTotal := attempteventFields[7].Descriptor()
	// attemptevent.DefaultQuestionsTotal holds the default value on creation for the questions_total field.
	attemptevent.DefaultQuestionsTotal = attempteventDescQuestionsTotal.Default.(int)
	// attempteventDescDurationSecs is the schema descriptor for duration_secs field.
	attempteventDescDurationSecs := attempteventFields[8].Descriptor()
	// attemptevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	attemptevent.DefaultDurationSecs = attempteventDescDurationSecs.Default.(int)
	// attempteventDescAdaptive is the schema descriptor for adaptive field.
	attempteventDescAdaptive := attempteventFields[9].Descriptor()
	// attemptevent.DefaultAdaptive holds the default value on creation for the adaptive field.
	attemptevent.DefaultAdaptive = attempteventDescAdaptive.Default.(bool)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescAttemptID is the schema descriptor for attempt_id field.
	hinteventDescAttemptID := hinteventFields[0].Descriptor()
	// hintevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	hintevent.AttemptIDValidator = hinteventDescAttemptID.Validators[0].(func(string) error)
	// hinteventDescQuestionText is the schema descriptor for question_text field.
	hinteventDescQuestionText := hinteventFields[1].Descriptor()
	// hintevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	hintevent.QuestionTextValidator = hinteventDescQuestionText.Validators[0].(func(string) error)
	// hinteventDescHintText is the schema descriptor for hint_text field.
	hinteventDescHintText := hinteventFields[2].Descriptor()
	// hintevent.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hintevent.HintTextValidator = hinteventDescHintText.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescSlot is the schema descriptor for slot field.
	snapshotDescSlot := snapshotFields[0].Descriptor()
	// snapshot.SlotValidator is a validator for the "slot" field. It is called by the builders before save.
	snapshot.SlotValidator = snapshotDescSlot.Validators[0].(func(string) error)
	// snapshotDescUpdatedAt is the schema descriptor for updated_at field.
	snapshotDescUpdatedAt := snapshotFields[4].Descriptor()
	// snapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	snapshot.DefaultUpdatedAt = snapshotDescUpdatedAt.Default.(func() time.Time)
	// snapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	snapshot.UpdateDefaultUpdatedAt = snapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
}
