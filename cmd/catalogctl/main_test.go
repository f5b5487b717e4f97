package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupSQLiteEnv(t *testing.T) {
	t.Helper()

	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "catalog.db"))
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func requireContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, out)
	}
}

func TestMigrateSeedList(t *testing.T) {
	setupSQLiteEnv(t)

	out, err := runCLI(t, "migrate")
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	requireContains(t, out, "Schema is up to date")

	seedFile := filepath.Join("..", "..", "seeds", "movies.toml")
	out, err = runCLI(t, "seed", "--file", seedFile)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	requireContains(t, out, "Seeded 14 movies")

	out, err = runCLI(t, "seed", "--file", seedFile)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	requireContains(t, out, "Seeded 0 movies")
	requireContains(t, out, "(14 already present)")

	out, err = runCLI(t, "list", "--sort", "title", "--order", "desc")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Release Date")
	requireContains(t, out, "1968-04-06")
	if strings.Count(out, "Star Wars") != 1 {
		t.Fatalf("expected re-seeding not to duplicate movies, got:\n%s", out)
	}
	if strings.Index(out, "THX-1138") > strings.Index(out, "Aladdin") {
		t.Fatalf("expected descending title order, got:\n%s", out)
	}

	out, err = runCLI(t, "list", "--ratings", "G")
	if err != nil {
		t.Fatalf("list --ratings: %v", err)
	}
	requireContains(t, out, "Chicken Run")
	if strings.Contains(out, "The Terminator") {
		t.Fatalf("expected R movies to be filtered out, got:\n%s", out)
	}
}

func TestListEmptyCatalog(t *testing.T) {
	setupSQLiteEnv(t)

	if _, err := runCLI(t, "migrate"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	out, err := runCLI(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "No movies")
}

func TestSeedRequiresFile(t *testing.T) {
	setupSQLiteEnv(t)

	if _, err := runCLI(t, "seed"); err == nil {
		t.Fatal("expected seed without --file to fail")
	}
}

func TestSeedRejectsInvalidFileAtomically(t *testing.T) {
	setupSQLiteEnv(t)

	path := filepath.Join(t.TempDir(), "bad.toml")
	content := "[[movies]]\ntitle = \"Alien\"\nrating = \"R\"\n\n[[movies]]\ntitle = \"Up\"\nrating = \"X\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	if _, err := runCLI(t, "seed", "--file", path); err == nil {
		t.Fatal("expected seed with an unknown rating to fail")
	}

	out, err := runCLI(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "No movies")
}

func TestRenderTableKeepsHeaderCase(t *testing.T) {
	out := renderTable([]string{"Title", "Release Date"}, [][]string{{"Alien", "1979-05-25"}})

	requireContains(t, out, "Release Date")
	if strings.Contains(out, "RELEASE DATE") {
		t.Fatalf("expected header case to be kept, got:\n%s", out)
	}
}

func TestListQueryValidation(t *testing.T) {
	testCases := []struct {
		name    string
		sort    string
		order   string
		ratings []string
		wantErr bool
	}{
		{name: "defaults", wantErr: false},
		{name: "title", sort: "title", wantErr: false},
		{name: "unknown column", sort: "director", wantErr: true},
		{name: "unknown order", sort: "title", order: "sideways", wantErr: true},
		{name: "unknown rating", ratings: []string{"X"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := listQuery(tc.sort, tc.order, tc.ratings)
			if tc.wantErr != (err != nil) {
				t.Fatalf("listQuery(%q, %q, %v) err = %v", tc.sort, tc.order, tc.ratings, err)
			}
			if tc.sort == "title" && !tc.wantErr && q.Order != "asc" {
				t.Fatalf("expected asc default order, got %q", q.Order)
			}
		})
	}
}
