package services

import (
	"testing"

	"eduplay/models"
)

func TestQuestionBank(t *testing.T) {
	modules := []string{
		models.ModuleMathematics,
		models.ModuleEnglish,
		models.ModuleGeneralKnowledge,
	}

	for _, module := range modules {
		t.Run(module, func(t *testing.T) {
			questions, ok := QuizQuestions(module)
			if !ok {
				t.Fatalf("QuizQuestions(%q) not found", module)
			}
			if len(questions) != models.QuestionsPerQuiz {
				t.Fatalf("module has %d questions, want %d", len(questions), models.QuestionsPerQuiz)
			}

			for i, q := range questions {
				if q.Text == "" {
					t.Errorf("question %d has empty text", i)
				}
				if len(q.Options) != 4 {
					t.Errorf("question %d has %d options, want 4", i, len(q.Options))
				}
				if q.Correct < 0 || q.Correct >= len(q.Options) {
					t.Errorf("question %d correct index %d out of range", i, q.Correct)
				}
			}
		})
	}
}

func TestQuestionBankRejectsUnknownModule(t *testing.T) {
	if _, ok := QuizQuestions("science"); ok {
		t.Error("QuizQuestions(\"science\") should not exist")
	}
}
