package main

import (
	"bytes"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	upErr   error
	steps   []int
	forced  int
	version uint
	dirty   bool
	verErr  error
}

func (f *fakeMigrator) Up() error                    { return f.upErr }
func (f *fakeMigrator) Steps(n int) error            { f.steps = append(f.steps, n); return nil }
func (f *fakeMigrator) Migrate(uint) error           { return migrate.ErrNoChange }
func (f *fakeMigrator) Force(version int) error      { f.forced = version; return nil }
func (f *fakeMigrator) Version() (uint, bool, error) { return f.version, f.dirty, f.verErr }

func run(t *testing.T, m *fakeMigrator, args ...string) (string, error) {
	t.Helper()
	closed := false
	t.Cleanup(func() { require.True(t, closed, "migrator was not closed") })

	cmd := newRootCmd(func() (migrator, func(), error) {
		return m, func() { closed = true }, nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	t.Parallel()

	m := &fakeMigrator{upErr: migrate.ErrNoChange, version: 1, dirty: true}

	out, err := run(t, m, "up")
	require.NoError(t, err)
	require.Equal(t, "no migration changes\n", out)

	out, err = run(t, m, "down", "2")
	require.NoError(t, err)
	require.Equal(t, []int{-2}, m.steps)
	require.Contains(t, out, "rolled back 2")

	out, err = run(t, m, "version")
	require.NoError(t, err)
	require.Equal(t, "version: 1\ndirty: true\n", out)

	_, err = run(t, m, "force", "1")
	require.NoError(t, err)
	require.Equal(t, 1, m.forced)

	out, err = run(t, m, "migrate", "1")
	require.NoError(t, err)
	require.Equal(t, "no migration changes\n", out)
}

func TestVersion_NoneApplied(t *testing.T) {
	t.Parallel()

	out, err := run(t, &fakeMigrator{verErr: migrate.ErrNilVersion}, "version")
	require.NoError(t, err)
	require.Equal(t, "version: none\ndirty: false\n", out)
}

func TestParseHelpers(t *testing.T) {
	t.Parallel()

	steps, err := parseSteps(nil)
	require.NoError(t, err)
	require.Equal(t, 1, steps)
	_, err = parseSteps([]string{"0"})
	require.Error(t, err)
	_, err = parseVersion("-1")
	require.Error(t, err)
	target, err := parseTarget(" 7 ")
	require.NoError(t, err)
	require.Equal(t, uint(7), target)
}

func TestResolveMigrationsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	got, err := resolveMigrationsDir(dir)
	require.NoError(t, err)
	require.Equal(t, dir, got)
}
