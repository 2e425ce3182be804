package repository_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/promptlab/pkg/repository"
)

type row struct {
	ID    string
	Group string
}

func TestTableInsertAndGet(t *testing.T) {
	table := repository.NewTable[row]()

	if err := table.Insert("a", row{ID: "a"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, ok := table.Get("a")
	if !ok {
		t.Fatal("get: not found")
	}
	if got.ID != "a" {
		t.Errorf("get: got %s, want a", got.ID)
	}

	if _, ok := table.Get("missing"); ok {
		t.Error("get missing: should not be found")
	}
}

func TestTableInsertDuplicate(t *testing.T) {
	table := repository.NewTable[row]()
	table.Insert("a", row{ID: "a", Group: "first"})

	err := table.Insert("a", row{ID: "a", Group: "second"})
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("error: got %v, want ErrDuplicate", err)
	}

	got, _ := table.Get("a")
	if got.Group != "first" {
		t.Errorf("duplicate insert overwrote value: got %s", got.Group)
	}
}

func TestTableReplace(t *testing.T) {
	table := repository.NewTable[row]()
	table.Insert("a", row{ID: "a", Group: "x"})

	if err := table.Replace("a", row{ID: "a", Group: "y"}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got, _ := table.Get("a"); got.Group != "y" {
		t.Errorf("replace: got %s, want y", got.Group)
	}

	if err := table.Replace("missing", row{}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("replace missing: got %v, want ErrNotFound", err)
	}
	if table.Has("missing") {
		t.Error("replace missing should not insert")
	}
}

func TestTableOrderAndDelete(t *testing.T) {
	table := repository.NewTable[row]()
	for _, id := range []string{"a", "b", "c", "d"} {
		table.Insert(id, row{ID: id})
	}

	if !table.Delete("b") {
		t.Fatal("delete b: reported absent")
	}
	if table.Delete("b") {
		t.Error("second delete b: reported present")
	}

	all := table.All()
	want := []string{"a", "c", "d"}
	if len(all) != len(want) {
		t.Fatalf("len: got %d, want %d", len(all), len(want))
	}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("all[%d]: got %s, want %s", i, all[i].ID, id)
		}
	}
}

func TestTableDeleteWhere(t *testing.T) {
	table := repository.NewTable[row]()
	table.Insert("a", row{ID: "a", Group: "x"})
	table.Insert("b", row{ID: "b", Group: "y"})
	table.Insert("c", row{ID: "c", Group: "x"})

	removed := table.DeleteWhere(func(r row) bool { return r.Group == "x" })
	if removed != 2 {
		t.Errorf("removed: got %d, want 2", removed)
	}
	if table.Len() != 1 {
		t.Errorf("len: got %d, want 1", table.Len())
	}
	if all := table.All(); len(all) != 1 || all[0].ID != "b" {
		t.Errorf("remaining: got %v", all)
	}
}

func TestTableWhereReturnsCopy(t *testing.T) {
	table := repository.NewTable[row]()
	table.Insert("a", row{ID: "a", Group: "x"})

	got := table.Where(func(r row) bool { return r.Group == "x" })
	got[0].Group = "mutated"

	if stored, _ := table.Get("a"); stored.Group != "x" {
		t.Errorf("stored value changed through copy: %s", stored.Group)
	}
}

func TestTableClear(t *testing.T) {
	table := repository.NewTable[row]()
	table.Insert("a", row{ID: "a"})
	table.Clear()

	if table.Len() != 0 || len(table.All()) != 0 {
		t.Error("clear left values behind")
	}
	if err := table.Insert("a", row{ID: "a"}); err != nil {
		t.Errorf("insert after clear: %v", err)
	}
}

func TestMapError(t *testing.T) {
	errNotFound := errors.New("thing not found")
	errDup := errors.New("thing exists")
	other := errors.New("other")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"not found", repository.ErrNotFound, errNotFound},
		{"duplicate", repository.ErrDuplicate, errDup},
		{"passthrough", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repository.MapError(tt.in, errNotFound, errDup); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
