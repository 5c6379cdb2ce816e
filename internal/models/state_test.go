package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsDeepAndSessionFree(t *testing.T) {
	state := DefaultState(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	session := state.Users[2].Clone()
	state.CurrentUser = &session

	clone := state.Clone()
	require.Nil(t, clone.CurrentUser)

	clone.Users[2].Subjects[0].Name = "Bozulmuş"
	assert.Equal(t, "Matematik", state.Users[2].Subjects[0].Name)
}

func TestNormalizeReplacesNilCollections(t *testing.T) {
	user := User{ID: "ghost"}
	state := &AppState{CurrentUser: &user}
	state.Normalize()

	assert.NotNil(t, state.Users)
	assert.NotNil(t, state.ExamResults)
	assert.NotNil(t, state.Announcements)
	assert.NotNil(t, state.AdminMessages)
	assert.NotNil(t, state.CoachingRequests)
	assert.NotNil(t, state.WeeklySchedules)
	assert.Nil(t, state.CurrentUser)
}

func TestDefaultSubjectsReturnsFreshCopies(t *testing.T) {
	first := DefaultSubjects(ExamTypeYKS)
	require.Len(t, first, 5)
	first[0].Name = "Bozulmuş"

	second := DefaultSubjects(ExamTypeYKS)
	assert.Equal(t, "Matematik", second[0].Name)
}

func TestDefaultSubjectsUnknownExamType(t *testing.T) {
	assert.Empty(t, DefaultSubjects("TYT"))
}

func TestDefaultStateSeedsAccounts(t *testing.T) {
	state := DefaultState(time.Now())
	require.Len(t, state.Users, 3)
	assert.Equal(t, RoleAdmin, state.Users[0].Role)
	assert.Equal(t, RoleTeacher, state.Users[1].Role)
	assert.True(t, state.Users[1].IsCoachingOpen)
	assert.Equal(t, RoleStudent, state.Users[2].Role)
	assert.Len(t, state.Users[2].Subjects, 5)
	require.Len(t, state.Announcements, 1)
	assert.True(t, state.Announcements[0].IsGlobal)
}
