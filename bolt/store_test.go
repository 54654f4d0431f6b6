package bolt

import (
	"os"
	"testing"

	"github.com/aknip/notedesk/testutil"
)

func createStores(t *testing.T) (testutil.Stores, func()) {
	tmpFile, err := os.CreateTemp("", "")
	if err != nil {
		t.Fatal("could not create tmp file:", err)
	}

	filename := tmpFile.Name()
	tmpFile.Close()

	driver := &Driver{}
	if err := driver.Open(filename); err != nil {
		os.Remove(filename)
		t.Fatalf("could not open bolt on file %s: %v", filename, err)
	}

	stores := testutil.Stores{
		Users:       &UserStore{Driver: driver},
		Persons:     &PersonStore{Driver: driver},
		Notes:       &NoteStore{Driver: driver},
		Assignments: &AssignmentStore{Driver: driver},
		Visibility:  &VisibilityStore{Driver: driver},
	}

	return stores, func() {
		driver.Close()
		os.Remove(filename)
	}
}

func TestBoltUserStore(t *testing.T) {
	stores, f := createStores(t)
	defer f()
	testutil.TestUserStore(t, stores)
}

func TestBoltPersonStore(t *testing.T) {
	stores, f := createStores(t)
	defer f()
	testutil.TestPersonStore(t, stores)
}

func TestBoltNoteStore(t *testing.T) {
	stores, f := createStores(t)
	defer f()
	testutil.TestNoteStore(t, stores)
}

func TestBoltAssignmentStore(t *testing.T) {
	stores, f := createStores(t)
	defer f()
	testutil.TestAssignmentStore(t, stores)
}

func TestBoltVisibilityStore(t *testing.T) {
	stores, f := createStores(t)
	defer f()
	testutil.TestVisibilityStore(t, stores)
}
