package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/setlistx/internal/services"
	"github.com/desertthunder/setlistx/internal/shared"
	tu "github.com/desertthunder/setlistx/internal/testing"
	"github.com/desertthunder/setlistx/internal/ui"
)

const sevenSongs = `# Encore set
Oasis - Wonderwall
Billy Idol - White Wedding

Blur - Song 2
Pulp - Common People
Nobody - Nothing
Suede - Animal Nitrate
Elastica - Connection
`

// strictPrompter fails the test if any prompt is shown.
type strictPrompter struct{ t *testing.T }

func (p strictPrompter) Ask(label, defaultValue string) (string, error) {
	p.t.Errorf("unexpected prompt %q", label)
	return defaultValue, nil
}

func (p strictPrompter) Confirm(question string) (bool, error) {
	p.t.Errorf("unexpected confirmation %q", question)
	return false, nil
}

type cancelPrompter struct{}

func (cancelPrompter) Ask(string, string) (string, error) { return "", shared.ErrCancelled }
func (cancelPrompter) Confirm(string) (bool, error)       { return false, shared.ErrCancelled }

func songResults() map[string][]services.Track {
	return map[string][]services.Track{
		"Oasis - Wonderwall":         {{ID: "v1", Artist: "Oasis", Title: "Wonderwall"}},
		"Billy Idol - White Wedding": {{ID: "v2", Artist: "Billy Idol", Title: "White Wedding"}},
		"Blur - Song 2":              {{ID: "v3", Artist: "Blur", Title: "Song 2"}},
		"Pulp - Common People":       {{ID: "v4", Artist: "Pulp", Title: "Common People"}},
		"Suede - Animal Nitrate":     {{ID: "v6", Artist: "Suede", Title: "Animal Nitrate"}},
		"Elastica - Connection":      {{ID: "v7", Artist: "Elastica", Title: "Connection"}},
	}
}

type fixture struct {
	dir     string
	setlist string
	capture string
	headers string
	output  *bytes.Buffer
	logs    *bytes.Buffer
	service *tu.MockService
	session *tu.MockSession
	opened  []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		dir:     dir,
		setlist: filepath.Join(dir, "setlist.txt"),
		capture: filepath.Join(dir, "paste.txt"),
		headers: filepath.Join(dir, "headers_auth.json"),
		output:  &bytes.Buffer{},
		logs:    &bytes.Buffer{},
		service: &tu.MockService{Results: songResults(), PlaylistID: "PLabc"},
	}
	f.session = &tu.MockSession{Service: f.service}
	return f
}

func (f *fixture) runner(opts RunnerOpts) *Runner {
	opts.Output = f.output
	opts.Logger = shared.NewLogger(f.logs)
	if opts.OpenURL == nil {
		opts.OpenURL = func(url string) error {
			f.opened = append(f.opened, url)
			return nil
		}
	}
	return NewRunner(opts)
}

func (f *fixture) run(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	base := []string{"setlistx"}
	files := []string{"--setlist", f.setlist, "--capture", f.capture, "--headers", f.headers}
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		base = append(base, args[0])
		args = args[1:]
	}
	return r.app().Run(context.Background(), append(append(base, files...), args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}
			api := &services.APIService{}
			session := &tu.MockSession{}
			prompter := ui.NewLinePrompter(strings.NewReader(""), output)

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Logger:     logger,
				Output:     output,
				HTTPClient: httpClient,
				API:        api,
				Session:    session,
				Prompter:   prompter,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
			if runner.api != api {
				t.Error("expected api to be set")
			}
			if runner.session != session {
				t.Error("expected session to be set")
			}
			if runner.prompter != prompter {
				t.Error("expected prompter to be set")
			}
		})

		t.Run("with nil dependencies uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Input: strings.NewReader("")})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
			if runner.httpClient != http.DefaultClient {
				t.Error("expected httpClient to default to http.DefaultClient")
			}
			if runner.api == nil {
				t.Error("expected api to be built from config")
			}
			if _, ok := runner.prompter.(*ui.LinePrompter); !ok {
				t.Errorf("expected line prompter for non-terminal input, got %T", runner.prompter)
			}
		})

		t.Run("session defaults to a bootstrapper", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Input: strings.NewReader("")})
			if runner.sessionFor("paste.txt", "headers_auth.json") == nil {
				t.Error("expected a session provider")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			expected := `{"key":"value"}` + "\n"
			if result := output.String(); result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			err := runner.writeJSON(make(chan int), false)
			if err == nil || !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil || !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result := output.String(); result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("writePlainln surrounds with newlines", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			runner.writePlainln("Next %s:", "steps")
			if result := output.String(); result != "\nNext steps:\n" {
				t.Errorf("unexpected output %q", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")
			if err == nil || !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("app", func(t *testing.T) {
		app := NewRunner(RunnerOpts{}).app()
		if app.Name != "setlistx" || app.Action == nil {
			t.Error("expected root command to run create")
		}

		want := map[string]bool{"create": false, "setup": false, "setlist": false, "search": false, "auth": false}
		for _, cmd := range app.Commands {
			want[cmd.Name] = true
		}
		for name, found := range want {
			if !found {
				t.Errorf("command %s not registered", name)
			}
		}
	})
}

func TestCreate(t *testing.T) {
	t.Run("full run with prompts", func(t *testing.T) {
		f := newFixture(t)
		tu.MustWriteFile(t, f.setlist, sevenSongs)
		report := filepath.Join(f.dir, "report.csv")

		r := f.runner(RunnerOpts{
			Session:  f.session,
			Prompter: ui.NewLinePrompter(strings.NewReader("Britpop Night\ny\n"), f.output),
		})
		if err := f.run(t, r, "--report", report, "--open"); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		out := f.output.String()
		for _, want := range []string{
			"Read 7 songs from " + f.setlist,
			"1. Oasis - Wonderwall",
			"5. Nobody - Nothing",
			"... and 2 more songs",
			"Playlist name [Concert Playlist]: ",
			"Create playlist 'Britpop Night' with 7 songs? [y/N]: ",
			"Playlist 'Britpop Night' created successfully!",
			"Songs added: 6/7",
			"   - Nobody - Nothing",
			"Playlist URL: https://music.youtube.com/playlist?list=PLabc",
			"To use again:",
			"Report written to " + report + " (csv)",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q\n%s", want, out)
			}
		}
		if strings.Contains(out, "6. Suede - Animal Nitrate") {
			t.Error("preview should stop after 5 songs")
		}

		if len(f.service.Created) != 1 {
			t.Fatalf("expected one playlist, got %d", len(f.service.Created))
		}
		created := f.service.Created[0]
		if created.Name != "Britpop Night" || created.Privacy != "PRIVATE" {
			t.Errorf("unexpected playlist %+v", created)
		}
		if created.Description != "Setlist with 7 songs imported from setlist.txt" {
			t.Errorf("unexpected description %q", created.Description)
		}
		if len(f.service.Added) != 6 {
			t.Errorf("expected 6 added tracks, got %v", f.service.Added)
		}

		tu.AssertFileExists(t, report)
		if len(f.opened) != 1 || f.opened[0] != "https://music.youtube.com/playlist?list=PLabc" {
			t.Errorf("unexpected opened urls %v", f.opened)
		}
		if !strings.Contains(f.logs.String(), "Not found: Nobody - Nothing") {
			t.Errorf("expected progress warning in logs:\n%s", f.logs.String())
		}
	})

	t.Run("flags skip prompts", func(t *testing.T) {
		f := newFixture(t)
		tu.MustWriteFile(t, f.setlist, "Oasis - Wonderwall\n")

		r := f.runner(RunnerOpts{Session: f.session, Prompter: strictPrompter{t}})
		if err := f.run(t, r, "create", "--name", "Gig", "--description", "From the pit", "--yes"); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		if len(f.service.Created) != 1 || f.service.Created[0].Description != "From the pit" {
			t.Errorf("unexpected created playlists %+v", f.service.Created)
		}
		if len(f.opened) != 0 {
			t.Error("browser should only open with --open")
		}
	})

	t.Run("empty name answer uses config default", func(t *testing.T) {
		f := newFixture(t)
		tu.MustWriteFile(t, f.setlist, "Oasis - Wonderwall\n")

		config := shared.DefaultConfig()
		config.Playlist.DefaultName = "Festival"
		r := f.runner(RunnerOpts{
			Config:   config,
			Session:  f.session,
			Prompter: ui.NewLinePrompter(strings.NewReader("\nyes\n"), f.output),
		})
		if err := f.run(t, r); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if len(f.service.Created) != 1 || f.service.Created[0].Name != "Festival" {
			t.Errorf("unexpected created playlists %+v", f.service.Created)
		}
	})

	t.Run("declined confirmation", func(t *testing.T) {
		f := newFixture(t)
		tu.MustWriteFile(t, f.setlist, sevenSongs)

		r := f.runner(RunnerOpts{
			Session:  f.session,
			Prompter: ui.NewLinePrompter(strings.NewReader("\nn\n"), f.output),
		})
		if err := f.run(t, r); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		if !strings.Contains(f.output.String(), "Operation cancelled") {
			t.Error("expected cancellation message")
		}
		if f.session.Opened != 0 || len(f.service.Created) != 0 {
			t.Error("nothing should be created after declining")
		}
	})

	t.Run("cancelled prompt", func(t *testing.T) {
		f := newFixture(t)
		tu.MustWriteFile(t, f.setlist, sevenSongs)

		r := f.runner(RunnerOpts{Session: f.session, Prompter: cancelPrompter{}})
		if err := f.run(t, r); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if !strings.Contains(f.output.String(), "Operation cancelled") || f.session.Opened != 0 {
			t.Error("expected cancellation without a session")
		}
	})

	t.Run("expected failures print guidance and exit cleanly", func(t *testing.T) {
		tc := []struct {
			name    string
			setlist string
			capture string
			prepare func(t *testing.T, f *fixture)
			session func(f *fixture) *tu.MockSession
			want    []string
		}{
			{
				name: "missing setlist",
				want: []string{"not found", "Oasis - Wonderwall", "Billy Idol - White Wedding"},
			},
			{
				name: "unreadable setlist",
				prepare: func(t *testing.T, f *fixture) {
					if err := os.Mkdir(f.setlist, 0755); err != nil {
						t.Fatalf("failed to create directory: %v", err)
					}
				},
				session: func(f *fixture) *tu.MockSession { return f.session },
				want:    []string{"Error reading file", "is a directory"},
			},
			{
				name:    "setlist with only comments",
				setlist: "# nothing yet\n\n",
				want:    []string{"No songs found", "Artist - Song"},
			},
			{
				name:    "missing capture",
				setlist: sevenSongs,
				want:    []string{"No valid headers found!", "Copy as cURL", "6. Run setlistx again"},
			},
			{
				name:    "capture without cookie",
				setlist: sevenSongs,
				capture: `curl -H 'authorization: SAPISIDHASH x' https://music.youtube.com`,
				want:    []string{"Missing critical headers: cookie"},
			},
			{
				name:    "playlist creation fails",
				setlist: sevenSongs,
				session: func(f *fixture) *tu.MockSession {
					f.service.CreateErr = errors.New("401 unauthorized")
					return f.session
				},
				want: []string{"Error creating playlist", "401 unauthorized", "setlistx auth status"},
			},
			{
				name:    "session unavailable",
				setlist: sevenSongs,
				session: func(f *fixture) *tu.MockSession {
					return &tu.MockSession{Err: shared.ErrSessionUnavailable}
				},
				want: []string{"Could not open a YouTube Music session"},
			},
			{
				name:    "credentials locked",
				setlist: sevenSongs,
				session: func(f *fixture) *tu.MockSession {
					return &tu.MockSession{Err: errors.Join(shared.ErrSessionUnavailable, shared.ErrArtifactLocked)}
				},
				want: []string{"another setlistx process"},
			},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				if tt.setlist != "" {
					tu.MustWriteFile(t, f.setlist, tt.setlist)
				}
				if tt.capture != "" {
					tu.MustWriteFile(t, f.capture, tt.capture)
				}
				if tt.prepare != nil {
					tt.prepare(t, f)
				}

				opts := RunnerOpts{Prompter: ui.NewLinePrompter(strings.NewReader(""), f.output)}
				if tt.session != nil {
					opts.Session = tt.session(f)
				}
				r := f.runner(opts)

				if err := f.run(t, r, "--name", "x", "--yes"); err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}

				out := f.output.String()
				for _, want := range tt.want {
					if !strings.Contains(out, want) {
						t.Errorf("output missing %q\n%s", want, out)
					}
				}
				if strings.Contains(out, "created successfully") {
					t.Error("no playlist should be reported")
				}
			})
		}
	})

	t.Run("capture is bootstrapped into credentials", func(t *testing.T) {
		f := newFixture(t)
		tu.MustWriteFile(t, f.setlist, "Oasis - Wonderwall\n")
		tu.MustWriteFile(t, f.capture, tu.Capture)

		r := f.runner(RunnerOpts{Prompter: strictPrompter{t}})
		r.config.Credentials.YouTube.ProxyURL = "http://127.0.0.1:1"
		if err := f.run(t, r, "--name", "x", "--yes"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}

		tu.AssertFileExists(t, f.headers)
		if !strings.Contains(f.output.String(), "Error creating playlist") {
			t.Errorf("expected unreachable proxy to fail creation:\n%s", f.output.String())
		}
	})
}

func TestSetup(t *testing.T) {
	t.Run("writes credentials", func(t *testing.T) {
		f := newFixture(t)
		tu.MustWriteFile(t, f.capture, tu.Capture)

		r := f.runner(RunnerOpts{})
		if err := f.run(t, r, "setup"); err != nil {
			t.Fatalf("Setup() error = %v", err)
		}

		headers, err := shared.LoadHeaders(f.headers)
		if err != nil {
			t.Fatalf("LoadHeaders() error = %v", err)
		}
		if !strings.Contains(f.output.String(), "Headers processed successfully") {
			t.Errorf("unexpected output %s", f.output.String())
		}
		if len(headers) != 11 {
			t.Errorf("expected 2 captured + 9 default headers, got %d", len(headers))
		}
	})

	t.Run("creates config from template", func(t *testing.T) {
		f := newFixture(t)
		tu.MustWriteFile(t, f.capture, tu.Capture)
		configFile := filepath.Join(f.dir, "config.toml")

		r := f.runner(RunnerOpts{})
		if err := f.run(t, r, "setup", "--config", configFile); err != nil {
			t.Fatalf("Setup() error = %v", err)
		}

		config, err := shared.LoadConfig(configFile)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if config.Playlist.DefaultName != "Concert Playlist" {
			t.Errorf("unexpected default name %q", config.Playlist.DefaultName)
		}
	})

	t.Run("verbose logs header keys", func(t *testing.T) {
		f := newFixture(t)
		tu.MustWriteFile(t, f.capture, tu.Capture)

		r := f.runner(RunnerOpts{})
		if err := f.run(t, r, "setup", "--verbose"); err != nil {
			t.Fatalf("Setup() error = %v", err)
		}
		if !strings.Contains(f.logs.String(), "headers found") {
			t.Errorf("expected debug log of header keys:\n%s", f.logs.String())
		}
	})

	t.Run("missing capture", func(t *testing.T) {
		f := newFixture(t)

		r := f.runner(RunnerOpts{})
		if err := f.run(t, r, "setup"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !strings.Contains(f.output.String(), "DevTools") {
			t.Errorf("expected capture guide:\n%s", f.output.String())
		}
		tu.AssertFileNotExists(t, f.headers)
	})
}

func TestSetlist(t *testing.T) {
	f := newFixture(t)
	tu.MustWriteFile(t, f.setlist, sevenSongs)

	t.Run("plain", func(t *testing.T) {
		f.output.Reset()
		if err := f.run(t, f.runner(RunnerOpts{}), "setlist"); err != nil {
			t.Fatalf("Setlist() error = %v", err)
		}
		out := f.output.String()
		if !strings.Contains(out, "7 songs in") || !strings.Contains(out, "  7. Elastica - Connection") {
			t.Errorf("unexpected output:\n%s", out)
		}
		if strings.Contains(out, "Encore set") {
			t.Error("comment lines must be skipped")
		}
	})

	t.Run("json", func(t *testing.T) {
		f.output.Reset()
		if err := f.run(t, f.runner(RunnerOpts{}), "setlist", "--json"); err != nil {
			t.Fatalf("Setlist() error = %v", err)
		}
		if !strings.Contains(f.output.String(), `"count": 7`) {
			t.Errorf("unexpected output:\n%s", f.output.String())
		}
	})
}

func TestSearch(t *testing.T) {
	t.Run("marks first result", func(t *testing.T) {
		f := newFixture(t)
		f.service.Results["Oasis - Wonderwall"] = []services.Track{
			{ID: "v1", Artist: "Oasis", Title: "Wonderwall", Album: "Morning Glory"},
			{ID: "v9", Artist: "Ryan Adams", Title: "Wonderwall"},
		}

		r := f.runner(RunnerOpts{Session: f.session})
		if err := f.run(t, r, "search", "--limit", "3", "Oasis - Wonderwall"); err != nil {
			t.Fatalf("Search() error = %v", err)
		}

		out := f.output.String()
		if !strings.Contains(out, "* 1. Oasis - Wonderwall (Morning Glory) [v1]") {
			t.Errorf("unexpected output:\n%s", out)
		}
		if !strings.Contains(out, "  2. Ryan Adams - Wonderwall [v9]") {
			t.Errorf("unexpected output:\n%s", out)
		}
		if f.service.SearchLimits[0] != 3 {
			t.Errorf("expected limit 3, got %d", f.service.SearchLimits[0])
		}
	})

	t.Run("no results", func(t *testing.T) {
		f := newFixture(t)
		r := f.runner(RunnerOpts{Session: f.session})
		if err := f.run(t, r, "search", "Nobody - Nothing"); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if !strings.Contains(f.output.String(), "Not found: Nobody - Nothing") {
			t.Errorf("unexpected output:\n%s", f.output.String())
		}
	})

	t.Run("search failure is explained", func(t *testing.T) {
		f := newFixture(t)
		f.service.SearchErrs = map[string]error{"Oasis - Wonderwall": errors.New("502 bad gateway")}

		r := f.runner(RunnerOpts{Session: f.session})
		if err := f.run(t, r, "search", "Oasis - Wonderwall"); err != nil {
			t.Fatalf("Search() error = %v", err)
		}

		out := f.output.String()
		if !strings.Contains(out, "Error searching YouTube Music") || !strings.Contains(out, "502 bad gateway") {
			t.Errorf("unexpected output:\n%s", out)
		}
		if strings.Contains(out, "Error creating playlist") {
			t.Errorf("search failure reported as playlist failure:\n%s", out)
		}
	})

	t.Run("missing query", func(t *testing.T) {
		f := newFixture(t)
		r := f.runner(RunnerOpts{Session: f.session})
		if err := f.run(t, r, "search"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})
}

func TestAuthStatus(t *testing.T) {
	t.Run("healthy proxy and valid credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/health" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"status":"ok","authenticated":true}`))
		}))
		defer server.Close()

		f := newFixture(t)
		f.headers = tu.WriteHeadersFile(t)

		r := f.runner(RunnerOpts{API: services.NewAPIService(server.URL, nil)})
		if err := f.run(t, r, "auth", "status"); err != nil {
			t.Fatalf("AuthStatus() error = %v", err)
		}

		out := f.output.String()
		for _, want := range []string{"Service is healthy", "Authentication: ✓ Authenticated", "Credentials: ✓"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q\n%s", want, out)
			}
		}
	})

	t.Run("missing credentials file", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"ok","authenticated":false}`))
		}))
		defer server.Close()

		f := newFixture(t)
		r := f.runner(RunnerOpts{API: services.NewAPIService(server.URL, nil)})
		if err := f.run(t, r, "auth", "status"); err != nil {
			t.Fatalf("AuthStatus() error = %v", err)
		}
		if !strings.Contains(f.output.String(), "missing or invalid") {
			t.Errorf("unexpected output:\n%s", f.output.String())
		}
	})

	t.Run("proxy down", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		f := newFixture(t)
		r := f.runner(RunnerOpts{API: services.NewAPIService(server.URL, nil)})
		if err := f.run(t, r, "auth", "status"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !strings.Contains(f.output.String(), "proxy unavailable") {
			t.Errorf("unexpected output:\n%s", f.output.String())
		}
	})
}
