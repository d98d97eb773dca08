package main

import (
	"reflect"
	"testing"
)

func TestParsePages(t *testing.T) {
	got, err := parsePages("1, 3-5,9")
	if err != nil {
		t.Fatalf("parsePages: %v", err)
	}
	want := []int{1, 3, 4, 5, 9}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parsePages = %v, want %v", got, want)
	}

	if got, err := parsePages(""); err != nil || got != nil {
		t.Errorf("empty list = %v, %v", got, err)
	}
}

func TestParsePages_Invalid(t *testing.T) {
	for _, list := range []string{"a", "0", "5-3", "2-x", "-1"} {
		if _, err := parsePages(list); err == nil {
			t.Errorf("parsePages(%q): expected error", list)
		}
	}
}
