package util

import "testing"

func TestCheckListSpec(t *testing.T) {
	testCases := []struct {
		name string
		spec string
		want bool
	}{
		{name: "plain list", spec: "0,1,2,3", want: true},
		{name: "ranges both directions", spec: "0-10,20-18", want: true},
		{name: "mixed decimal and hex", spec: "1,3,5-8,10,0x10-12", want: true},
		{name: "spaces ignored", spec: "1, 3, 5-8", want: true},
		{name: "empty", spec: "", want: false},
		{name: "consecutive commas", spec: "1,,2", want: false},
		{name: "trailing comma", spec: "1,2,", want: false},
		{name: "dangling dash", spec: "5-", want: false},
		{name: "letters", spec: "1,two", want: false},
		{name: "bare hex prefix", spec: "0x", want: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckListSpec(tc.spec); got != tc.want {
				t.Fatalf("CheckListSpec(%q) = %v, want %v", tc.spec, got, tc.want)
			}
		})
	}
}

func TestSelectArg(t *testing.T) {
	var sel *string

	SelectArg(&sel, "first")
	if sel == nil || *sel != "first" {
		t.Fatalf("slot = %v, want \"first\"", sel)
	}

	held := sel
	SelectArg(&sel, "second")
	if sel == nil || *sel != "second" {
		t.Fatalf("slot = %v, want \"second\"", sel)
	}
	if sel == held {
		t.Fatal("slot still points at the previous copy")
	}
	if *held != "first" {
		t.Fatalf("previous copy changed to %q", *held)
	}
}
