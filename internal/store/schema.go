package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	quizSessionsTable = "quiz_sessions"
	answerEventsTable = "answer_events"
)

var (
	// QuizSessionsColumns holds the columns for the "quiz_sessions" table.
	QuizSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "operation", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "start_level", Type: field.TypeInt},
		{Name: "end_level", Type: field.TypeInt, Default: 0},
		{Name: "answered", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "level_ups", Type: field.TypeInt, Default: 0},
		{Name: "best_streak", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeInt64},
		{Name: "ended_at", Type: field.TypeInt64, Nullable: true},
		{Name: "mastery_ms", Type: field.TypeInt64, Nullable: true},
	}
	// QuizSessionsTable holds the schema information for the "quiz_sessions" table.
	QuizSessionsTable = &schema.Table{
		Name:       quizSessionsTable,
		Columns:    QuizSessionsColumns,
		PrimaryKey: []*schema.Column{QuizSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizsession_operation",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionsColumns[1]},
			},
			{
				Name:    "quizsession_started_at",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionsColumns[9]},
			},
		},
	}
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "operation", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "a", Type: field.TypeInt},
		{Name: "b", Type: field.TypeInt},
		{Name: "answer", Type: field.TypeInt},
		{Name: "given", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "session_id", Type: field.TypeString},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       answerEventsTable,
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answer_events_quiz_sessions_answers",
				Columns:    []*schema.Column{AnswerEventsColumns[9]},
				RefColumns: []*schema.Column{QuizSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema, parents first.
	Tables = []*schema.Table{
		QuizSessionsTable,
		AnswerEventsTable,
	}
)

func init() {
	AnswerEventsTable.ForeignKeys[0].RefTable = QuizSessionsTable
}
