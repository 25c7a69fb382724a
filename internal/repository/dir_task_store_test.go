package repository_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/trailmap/internal/repository"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirStore_ReadsExistingFolders(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/root/!Spanish/Verbs x 2024-01-10.txt", []byte("ser, estar"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/root/!Spanish/.DS_Store", []byte{}, 0644))
	require.NoError(t, fs.MkdirAll("/root/.git", 0755))
	require.NoError(t, afero.WriteFile(fs, "/root/stray.txt", []byte{}, 0644))

	store := repository.NewDirTaskStore(fs, "/root")
	ctx := context.Background()

	projects, err := store.ListProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"!Spanish"}, projects, "hidden folders and loose files are skipped")

	tasks, err := store.ListTasks(ctx, "!Spanish")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Verbs x 2024-01-10.txt", tasks[0].Filename)
	assert.Equal(t, "ser, estar", tasks[0].Content)
}

func TestDirStore_MissingRootIsEmpty(t *testing.T) {
	store := repository.NewDirTaskStore(afero.NewMemMapFs(), "/nowhere")
	projects, err := store.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestDirStore_SortsTasksByName(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := repository.NewDirTaskStore(fs, "/r")
	ctx := context.Background()
	require.NoError(t, store.CreateProject(ctx, "P"))
	require.NoError(t, store.CreateTask(ctx, "P", "b.txt", ""))
	require.NoError(t, store.CreateTask(ctx, "P", "a.txt", ""))

	tasks, err := store.ListTasks(ctx, "P")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, filenames(tasks))
}

func TestDirStore_RejectsPathTraversal(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := repository.NewDirTaskStore(fs, "/r")
	ctx := context.Background()
	require.NoError(t, store.CreateProject(ctx, "P"))

	assert.ErrorIs(t, store.CreateTask(ctx, "P", "../escape.txt", ""), repository.ErrInvalidName)
	assert.ErrorIs(t, store.CreateProject(ctx, "../up"), repository.ErrInvalidName)

	exists, err := afero.Exists(fs, "/r/escape.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDirStore_MalformedNamesAreInvalid(t *testing.T) {
	store := repository.NewDirTaskStore(afero.NewMemMapFs(), "/r")
	ctx := context.Background()
	require.NoError(t, store.CreateProject(ctx, "P"))

	_, err := store.ListTasks(ctx, " x")
	assert.ErrorIs(t, err, repository.ErrInvalidName)

	content := "c"
	err = store.UpdateTask(ctx, "P", "a/b.txt", repository.TaskUpdate{Content: &content})
	assert.ErrorIs(t, err, repository.ErrInvalidName)
	assert.ErrorIs(t, store.DeleteTask(ctx, "P", ".."), repository.ErrInvalidName)
}
