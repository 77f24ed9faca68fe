package book

import "testing"

func TestVolumeAccessors(t *testing.T) {
	v := New("Larry Truett", "PHP for Cats")
	if got := v.Author(); got != "Larry Truett" {
		t.Errorf("Author() = %q", got)
	}
	if got := v.Title(); got != "PHP for Cats" {
		t.Errorf("Title() = %q", got)
	}
}

func TestVolumeIsABook(t *testing.T) {
	var _ Book = New("a", "t")
}
