package reschedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "Bluecroft/internal/domain"
)

type fakeMover struct {
	caseMoves []string
	taskMoves []string
	lastDate  time.Time
	err       error
}

func (f *fakeMover) MoveCase(id string, date time.Time) (dom.Case, error) {
	if f.err != nil {
		return dom.Case{}, f.err
	}
	f.caseMoves = append(f.caseMoves, id)
	f.lastDate = date
	return dom.Case{ID: id}, nil
}

func (f *fakeMover) MoveTask(id, task string, date time.Time) (dom.Case, error) {
	if f.err != nil {
		return dom.Case{}, f.err
	}
	f.taskMoves = append(f.taskMoves, id+"/"+task)
	f.lastDate = date
	return dom.Case{ID: id}, nil
}

var target = time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC)

func TestCaseMoveFlow(t *testing.T) {
	m := &fakeMover{}
	c := New(m)

	c.StartCase("c1")
	assert.Equal(t, AwaitingCaseDate, c.State().Phase)

	moved, err := c.Confirm(target)
	require.NoError(t, err)
	assert.Equal(t, "c1", moved.ID)
	assert.Equal(t, []string{"c1"}, m.caseMoves)
	assert.True(t, m.lastDate.Equal(target))
	assert.Equal(t, Idle, c.State().Phase)
}

func TestTaskMoveFlow(t *testing.T) {
	m := &fakeMover{}
	c := New(m)

	c.StartTask("c1", "verify id")
	st := c.State()
	assert.Equal(t, AwaitingTaskDate, st.Phase)
	assert.Equal(t, "verify id", st.Task)

	_, err := c.Confirm(target)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1/verify id"}, m.taskMoves)
	assert.Empty(t, m.caseMoves)
	assert.Equal(t, Idle, c.State().Phase)
}

func TestCancelReturnsToIdle(t *testing.T) {
	c := New(&fakeMover{})
	c.StartCase("c1")
	c.Cancel()
	assert.Equal(t, Idle, c.State().Phase)

	c.StartTask("c1", "t")
	c.Cancel()
	assert.Equal(t, Idle, c.State().Phase)
}

func TestConfirmWhileIdle(t *testing.T) {
	c := New(&fakeMover{})
	_, err := c.Confirm(target)
	assert.ErrorIs(t, err, ErrNotAwaiting)
}

func TestStartClosesDayPanel(t *testing.T) {
	c := New(&fakeMover{})
	c.SelectDate(target)
	require.NotNil(t, c.State().SelectedDate)

	c.StartCase("c1")
	assert.Nil(t, c.State().SelectedDate, "entering awaiting clears the day view")

	c.Cancel()
	c.SelectDate(target)
	c.StartTask("c1", "t")
	assert.Nil(t, c.State().SelectedDate)
}

func TestSelectIgnoredWhileAwaiting(t *testing.T) {
	c := New(&fakeMover{})
	c.StartCase("c1")
	c.SelectDate(target)
	assert.Nil(t, c.State().SelectedDate)
}

func TestStartTaskSupersedesStartCase(t *testing.T) {
	m := &fakeMover{}
	c := New(m)
	c.StartCase("c1")
	c.StartTask("c2", "t")

	_, err := c.Confirm(target)
	require.NoError(t, err)
	assert.Empty(t, m.caseMoves, "only the latest request commits")
	assert.Equal(t, []string{"c2/t"}, m.taskMoves)
}

func TestFailedMoveKeepsAwaiting(t *testing.T) {
	m := &fakeMover{err: assert.AnError}
	c := New(m)
	c.StartCase("missing")

	_, err := c.Confirm(target)
	require.Error(t, err)
	assert.Equal(t, AwaitingCaseDate, c.State().Phase)
}

func TestDropBypassesStates(t *testing.T) {
	m := &fakeMover{}
	c := New(m)

	_, err := c.Drop(DropCase, "c1", "", target)
	require.NoError(t, err)
	_, err = c.Drop(DropTask, "c1", "t", target)
	require.NoError(t, err)

	assert.Equal(t, []string{"c1"}, m.caseMoves)
	assert.Equal(t, []string{"c1/t"}, m.taskMoves)
	assert.Equal(t, Idle, c.State().Phase)
}

func TestDropValidation(t *testing.T) {
	c := New(&fakeMover{})
	_, err := c.Drop(DropTask, "c1", "", target)
	assert.ErrorIs(t, err, ErrBadDrop)
	_, err = c.Drop(DropCase, "", "", target)
	assert.ErrorIs(t, err, ErrBadDrop)
	_, err = c.Drop("other", "c1", "", target)
	assert.ErrorIs(t, err, ErrBadDrop)
}
