package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/model"
	"todolist/internal/service"
	"todolist/internal/store/memstore"
	"todolist/internal/ui"
)

func newCLIService(t *testing.T, defaults ...model.Item) *service.Service {
	t.Helper()
	ui.SetTheme("mono")
	svc, err := service.New(memstore.New(), service.DefaultKey, defaults)
	require.NoError(t, err)
	return svc
}

func TestRunNoArgsShowsHelp(t *testing.T) {
	svc := newCLIService(t)
	assert.Equal(t, 2, Run(svc, nil))
}

func TestRunUnknownSubcommand(t *testing.T) {
	svc := newCLIService(t)
	assert.Equal(t, 2, Run(svc, []string{"frobnicate"}))
}

func TestAddEditRemoveFlow(t *testing.T) {
	svc := newCLIService(t)

	assert.Equal(t, 0, Run(svc, []string{"add", "Buy", "milk"}))
	assert.Equal(t, 0, Run(svc, []string{"edit", "1", "Buy", "oat", "milk"}))

	items := svc.GetAll()
	require.Len(t, items, 1)
	assert.Equal(t, "Buy oat milk", items[0].Title)

	assert.Equal(t, 0, Run(svc, []string{"rm", "1"}))
	assert.Empty(t, svc.GetAll())
}

func TestAddWithoutTitleStartsDraft(t *testing.T) {
	svc := newCLIService(t)

	assert.Equal(t, 0, Run(svc, []string{"add"}))

	items := svc.GetAll()
	require.Len(t, items, 1)
	assert.True(t, items[0].IsDraft())

	// A second draft is a user error, not a crash.
	assert.Equal(t, 2, Run(svc, []string{"add"}))
}

func TestEditValidation(t *testing.T) {
	svc := newCLIService(t, model.Item{ID: 1, Title: "a"})

	assert.Equal(t, 2, Run(svc, []string{"edit"}))
	assert.Equal(t, 2, Run(svc, []string{"edit", "x", "title"}))
	assert.Equal(t, 2, Run(svc, []string{"edit", "9", "title"}))
}

func TestRemoveAbsentIDSucceeds(t *testing.T) {
	svc := newCLIService(t, model.Item{ID: 1, Title: "a"})

	assert.Equal(t, 0, Run(svc, []string{"rm", "99"}))
	assert.Len(t, svc.GetAll(), 1)
}

func TestSort(t *testing.T) {
	svc := newCLIService(t,
		model.Item{ID: 1, Title: "banana"},
		model.Item{ID: 2, Title: "Apple"},
	)

	assert.Equal(t, 0, Run(svc, []string{"sort", "desc"}))
	items := svc.GetAll()
	require.Len(t, items, 2)
	assert.Equal(t, "banana", items[0].Title)

	assert.Equal(t, 2, Run(svc, []string{"sort", "sideways"}))
}
