package install

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/skillset/internal/cli/prompt"
)

func newTestFlow(t *testing.T, p prompt.Prompter, items map[int][]string) (*flow[string], *[][]string, *[]step) {
	t.Helper()
	printer, _ := plainPrinter()

	var executed [][]string
	var visited []step
	f := &flow[string]{
		prompter:   p,
		printer:    printer,
		text:       flowText{categoriesMessage: "categories", itemsMessage: "items", confirmMessage: "confirm", againMessage: "again"},
		categories: []prompt.Choice{{Title: "a"}, {Title: "b"}},
		itemsIn: func(idxs []int) []string {
			var out []string
			for _, i := range idxs {
				out = append(out, items[i]...)
			}
			return out
		},
		choice:   func(s string) prompt.Choice { return prompt.Choice{Title: s} },
		describe: func(int, string) {},
		execute: func(_ context.Context, in []string) Result {
			executed = append(executed, in)
			return Result{Succeeded: in}
		},
		trace: func(_, to step) { visited = append(visited, to) },
	}
	return f, &executed, &visited
}

func TestFlow_Transitions(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{t: t, answers: []answer{
		{indexes: []int{0}},
		{indexes: []int{1, 0}},
		{yes: true},
		{yes: false},
	}}
	f, executed, visited := newTestFlow(t, p, map[int][]string{0: {"x", "y"}})

	require.NoError(t, f.run(context.Background()))

	assert.Equal(t, []step{stepSelectItems, stepConfirm, stepExecute, stepAgain, stepDone}, *visited)
	assert.Equal(t, [][]string{{"y", "x"}}, *executed, "items keep the order they were picked in")
}

func TestFlow_NoCandidatesReturnsToCategories(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{t: t, answers: []answer{
		{indexes: []int{1}},
		{indexes: nil},
	}}
	f, executed, visited := newTestFlow(t, p, map[int][]string{0: {"x"}})

	require.NoError(t, f.run(context.Background()))

	assert.Equal(t, []step{stepSelectItems, stepSelectCategories, stepDone}, *visited)
	assert.Empty(t, *executed)
	assert.Equal(t, []string{"categories", "categories"}, p.asked)
}

func TestFlow_PromptErrorStops(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{t: t, answers: []answer{
		{indexes: []int{0}},
		{indexes: []int{0}},
		{err: prompt.ErrCancelled},
	}}
	f, executed, _ := newTestFlow(t, p, map[int][]string{0: {"x"}})

	err := f.run(context.Background())
	require.ErrorIs(t, err, prompt.ErrCancelled)
	assert.Empty(t, *executed)
}

func TestStep_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "select-categories", stepSelectCategories.String())
	assert.Equal(t, "done", stepDone.String())
	assert.Equal(t, "unknown", step(99).String())
}
