package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/polingest/core"
)

func findCommand(t *testing.T, app *cli.App, name string) *cli.Command {
	t.Helper()
	for _, cmd := range app.Commands {
		if cmd.Name == name {
			return cmd
		}
	}
	t.Fatalf("command %s not registered", name)
	return nil
}

func TestCommandFlags(t *testing.T) {
	app := newApp()

	t.Run("db has default value", func(t *testing.T) {
		for _, name := range []string{"ingest", "policies", "job"} {
			cmd := findCommand(t, app, name)
			var dbFlag *cli.StringFlag
			for _, flag := range cmd.Flags {
				if f, ok := flag.(*cli.StringFlag); ok && f.Name == "db" {
					dbFlag = f
					break
				}
			}
			require.NotNil(t, dbFlag, name)
			assert.Equal(t, "./data", dbFlag.Value)
			assert.Empty(t, dbFlag.EnvVars)
		}
	})

	t.Run("upsert defaults to off", func(t *testing.T) {
		cmd := findCommand(t, app, "ingest")
		var upsertFlag *cli.BoolFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.BoolFlag); ok && f.Name == "upsert" {
				upsertFlag = f
				break
			}
		}
		require.NotNil(t, upsertFlag)
		assert.False(t, upsertFlag.Value)
	})

	t.Run("workers has default value of 1", func(t *testing.T) {
		cmd := findCommand(t, app, "ingest")
		var workersFlag *cli.IntFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "workers" {
				workersFlag = f
				break
			}
		}
		require.NotNil(t, workersFlag)
		assert.Equal(t, 1, workersFlag.Value)
	})

	t.Run("config has no default", func(t *testing.T) {
		cmd := findCommand(t, app, "serve")
		var configFlag *cli.StringFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "config" {
				configFlag = f
				break
			}
		}
		require.NotNil(t, configFlag)
		assert.Empty(t, configFlag.Value)
	})
}

func TestCommandValidation(t *testing.T) {
	dir := t.TempDir()

	t.Run("ingest requires a file", func(t *testing.T) {
		err := newApp().Run([]string{"polingest", "ingest", "--db", filepath.Join(dir, "db")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one file")
	})

	t.Run("policies requires a user name", func(t *testing.T) {
		err := newApp().Run([]string{"polingest", "policies", "--db", filepath.Join(dir, "db")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "user name is required")
	})

	t.Run("job requires an id", func(t *testing.T) {
		err := newApp().Run([]string{"polingest", "job", "--db", filepath.Join(dir, "db")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "job id is required")
	})

	t.Run("unknown job", func(t *testing.T) {
		err := newApp().Run([]string{"polingest", "job", "--db", filepath.Join(dir, "db"), "nope"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record not found")
	})

	t.Run("serve rejects invalid config", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ingest:\n  workers: -1\n"), 0644))
		err := newApp().Run([]string{"polingest", "serve", "--config", path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ingest.workers")
	})
}

func TestIngestAndQuery(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db")

	csv := "agent,company_name,category_name,userName,firstname,policy_number,policy_start_date\n" +
		"A1,Acme,Auto,jdoe,John,P-1,2024-05-01\n" +
		"A1,Acme,Home,jdoe,John,P-2,\n"
	path := filepath.Join(dir, "upload.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	require.NoError(t, app.Run([]string{"polingest", "ingest", "--db", db, path}))
	assert.Contains(t, out.String(), "file successfully processed")
	assert.Contains(t, out.String(), "rows=2")

	id := regexp.MustCompile(`as job (\S+)`).FindStringSubmatch(out.String())
	require.Len(t, id, 2)

	out.Reset()
	app = newApp()
	app.Writer = &out
	require.NoError(t, app.Run([]string{"polingest", "policies", "--db", db, "jdoe"}))
	assert.Contains(t, out.String(), "jdoe (John): 2 policies")
	assert.Contains(t, out.String(), "P-1")
	assert.Contains(t, out.String(), "2024-05-01")
	assert.Contains(t, out.String(), "Home")

	out.Reset()
	app = newApp()
	app.Writer = &out
	require.NoError(t, app.Run([]string{"polingest", "job", "--db", db, id[1]}))
	assert.Contains(t, out.String(), "status:   succeeded")
	assert.Contains(t, out.String(), fmt.Sprintf("checksum: %016x", uint64(core.IDFromContent([]byte(csv)))))
	assert.Contains(t, out.String(), "policies=2")
}

func TestIngestUnsupportedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "upload.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	err := newApp().Run([]string{"polingest", "ingest", "--db", filepath.Join(dir, "db"), path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 files failed")
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: tc.input,
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
				assert.True(t, slog.Default().Enabled(t.Context(), tc.expected))
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, tc := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(tc, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"polingest", "--log-level", "invalid", "job", "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
		assert.Contains(t, err.Error(), "invalid")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				assert.Equal(t, "debug", c.String("log-level"))
				return nil
			},
		}

		err := app.Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
	})
}

func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}
