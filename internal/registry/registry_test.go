package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/submarines3d/internal/games/submarines"
)

type stubFrontend struct {
	id string
}

func (s stubFrontend) ID() string    { return s.id }
func (s stubFrontend) Title() string { return strings.ToUpper(s.id) }

func (s stubFrontend) Run(*submarines.Session, Env) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test", func() Frontend { return stubFrontend{id: "zz-test"} })

	if !Exists("zz-test") {
		t.Fatal("expected registered frontend to exist")
	}

	f, err := Create("zz-test")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if f.ID() != "zz-test" {
		t.Errorf("expected id zz-test, got %q", f.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-test" {
			found = info.Title == "ZZ-TEST"
		}
	}
	if !found {
		t.Error("List should include the frontend with its title")
	}
}

func TestListSorted(t *testing.T) {
	Register("aa-test", func() Frontend { return stubFrontend{id: "aa-test"} })
	Register("mm-test", func() Frontend { return stubFrontend{id: "mm-test"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("list not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-frontend"); err == nil {
		t.Error("expected error for unknown frontend")
	}
	if Exists("no-such-frontend") {
		t.Error("unknown frontend should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", func() Frontend { return stubFrontend{id: "dup-test"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup-test", func() Frontend { return stubFrontend{id: "dup-test"} })
}
