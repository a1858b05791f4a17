package controller

import "testing"

func TestSplitIDList(t *testing.T) {
	got := splitIDList(" 8703033456 ; 8901094567;;")
	if len(got) != 2 || got[0] != "8703033456" || got[1] != "8901094567" {
		t.Fatalf("unexpected split: %v", got)
	}
	if out := splitIDList(""); out != nil {
		t.Fatalf("empty list expected, got %v", out)
	}
}

func TestLooksLikeHeader(t *testing.T) {
	if !looksLikeHeader([]string{"course_name", "course_code"}) {
		t.Fatal("header row not detected")
	}
	if looksLikeHeader([]string{"Algebra II", "301"}) {
		t.Fatal("data row misdetected as header")
	}
}
